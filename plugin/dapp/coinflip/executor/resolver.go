package executor

import (
	"encoding/binary"
	"math"

	"github.com/33cn/chain33/common"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//flipCoin 由双方随机数和区块环境推导硬币面，任何节点重放都得到同一结果
func flipCoin(secretA, secretB uint64, height, blocktime int64) int32 {
	//乘法溢出回绕，保留双方随机数的混合熵
	combined := secretA * secretB
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], combined)
	binary.LittleEndian.PutUint64(buf[8:], uint64(height))
	binary.LittleEndian.PutUint64(buf[16:], uint64(blocktime))
	hash := common.Sha256(common.Sha256(buf[:]))
	v := binary.LittleEndian.Uint64(hash[:8])
	if v%2 == 0 {
		return pty.CoinSideHeads
	}
	return pty.CoinSideTails
}

//settleResult 根据双方选择和硬币面判定胜负
//两边选同一面是平局，否则必有一方猜中
func settleResult(createSide, joinSide, coin int32) int32 {
	if createSide == joinSide {
		return pty.IsTie
	}
	if createSide == coin {
		return pty.IsCreatorWin
	}
	if joinSide == coin {
		return pty.IsJoinerWin
	}
	//双方选择不同时必有一方与硬币面一致
	panic("coinflip: no side matches flipped coin")
}

//calcFee 整数抽水，feeBps 超过上限按上限截断
func calcFee(totalPot int64, feeBps int64) int64 {
	if feeBps <= 0 || totalPot <= 0 {
		return 0
	}
	if feeBps > pty.MaxFeeRateBps {
		feeBps = pty.MaxFeeRateBps
	}
	//奖池极大时先除后乘，避免乘法溢出
	if totalPot > math.MaxInt64/feeBps {
		return totalPot / pty.BpsDenominator * feeBps
	}
	return totalPot * feeBps / pty.BpsDenominator
}
