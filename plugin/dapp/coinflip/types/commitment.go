package types

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/33cn/chain33/common"
)

//CommitmentLen 承诺固定为一次双重 sha256 的输出长度
const CommitmentLen = 32

//承诺原文固定 16 字节：1 字节硬币面 + 7 字节零填充 + 8 字节小端 secret
const commitPreimageLen = 16

//CheckSide 只接受正面或反面
func CheckSide(side int32) error {
	if side != CoinSideHeads && side != CoinSideTails {
		return ErrInvalidSide
	}
	return nil
}

//CheckSecret 拒绝肉眼可猜的弱随机数
func CheckSecret(secret uint64) error {
	if secret == 0 || secret == 1 || secret == math.MaxUint64 {
		return ErrWeakSecret
	}
	return nil
}

//CalcCommitment 计算 side+secret 的双重 sha256 承诺
func CalcCommitment(side int32, secret uint64) []byte {
	var preimage [commitPreimageLen]byte
	preimage[0] = byte(side)
	binary.LittleEndian.PutUint64(preimage[8:], secret)
	return common.Sha256(common.Sha256(preimage[:]))
}

var zeroCommitment [CommitmentLen]byte

//两种硬币面叉乘三个黑名单 secret，一共六个可以被任何人预先算出的退化承诺
var weakCommitments = func() [][]byte {
	var list [][]byte
	for _, side := range []int32{CoinSideHeads, CoinSideTails} {
		for _, secret := range []uint64{0, 1, math.MaxUint64} {
			list = append(list, CalcCommitment(side, secret))
		}
	}
	return list
}()

//CheckCommitmentValue 提交阶段校验承诺本身：长度、全零值、弱 secret 推出的退化承诺
func CheckCommitmentValue(commitment []byte) error {
	if len(commitment) != CommitmentLen {
		return ErrInvalidCommitment
	}
	if bytes.Equal(commitment, zeroCommitment[:]) {
		return ErrInvalidCommitment
	}
	for _, weak := range weakCommitments {
		if bytes.Equal(commitment, weak) {
			return ErrWeakSecret
		}
	}
	return nil
}

//CheckCommitment 校验揭示的 side+secret 是否与先前的承诺一致
func CheckCommitment(commitment []byte, side int32, secret uint64) error {
	if len(commitment) != CommitmentLen {
		return ErrInvalidCommitment
	}
	if err := CheckSide(side); err != nil {
		return err
	}
	if err := CheckSecret(secret); err != nil {
		return err
	}
	if !bytes.Equal(commitment, CalcCommitment(side, secret)) {
		return ErrCommitMismatch
	}
	return nil
}
