package types

import (
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/types"
)

//CreateRawCoinflipPreCreateTx 构造未签名的建房交易
func CreateRawCoinflipPreCreateTx(cfg *types.Chain33Config, parm *CoinflipPreCreateTx) (*types.Transaction, error) {
	if parm == nil {
		tlog.Error("CreateRawCoinflipPreCreateTx", "parm", parm)
		return nil, types.ErrInvalidParam
	}
	v := &CoinflipCreate{
		Value: parm.Amount,
	}
	action := &CoinflipAction{
		Ty:    CoinflipActionCreate,
		Value: &CoinflipAction_Create{v},
	}
	return createRawTx(cfg, action, parm.Fee)
}

//CreateRawCoinflipPreJoinTx 构造未签名的入场交易
func CreateRawCoinflipPreJoinTx(cfg *types.Chain33Config, parm *CoinflipPreJoinTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	v := &CoinflipJoin{
		RoomId: parm.RoomId,
	}
	action := &CoinflipAction{
		Ty:    CoinflipActionJoin,
		Value: &CoinflipAction_Join{v},
	}
	return createRawTx(cfg, action, parm.Fee)
}

//CreateRawCoinflipPreCommitTx 构造未签名的承诺交易
func CreateRawCoinflipPreCommitTx(cfg *types.Chain33Config, parm *CoinflipPreCommitTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	if err := CheckCommitmentValue(parm.Commitment); err != nil {
		return nil, err
	}
	v := &CoinflipCommit{
		RoomId:     parm.RoomId,
		Commitment: parm.Commitment,
	}
	action := &CoinflipAction{
		Ty:    CoinflipActionCommit,
		Value: &CoinflipAction_Commit{v},
	}
	return createRawTx(cfg, action, parm.Fee)
}

//CreateRawCoinflipPreRevealTx 构造未签名的揭示交易
func CreateRawCoinflipPreRevealTx(cfg *types.Chain33Config, parm *CoinflipPreRevealTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	if err := CheckSide(parm.Side); err != nil {
		return nil, err
	}
	if err := CheckSecret(parm.Secret); err != nil {
		return nil, err
	}
	v := &CoinflipReveal{
		RoomId: parm.RoomId,
		Side:   parm.Side,
		Secret: parm.Secret,
	}
	action := &CoinflipAction{
		Ty:    CoinflipActionReveal,
		Value: &CoinflipAction_Reveal{v},
	}
	return createRawTx(cfg, action, parm.Fee)
}

//CreateRawCoinflipPreTimeoutTx 构造未签名的超时回收交易
func CreateRawCoinflipPreTimeoutTx(cfg *types.Chain33Config, parm *CoinflipPreTimeoutTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	v := &CoinflipTimeout{
		RoomId: parm.RoomId,
	}
	action := &CoinflipAction{
		Ty:    CoinflipActionTimeout,
		Value: &CoinflipAction_Timeout{v},
	}
	return createRawTx(cfg, action, parm.Fee)
}

func createRawTx(cfg *types.Chain33Config, action *CoinflipAction, fee int64) (*types.Transaction, error) {
	execName := cfg.ExecName(CoinflipX)
	tx := &types.Transaction{
		Execer:  []byte(execName),
		Payload: types.Encode(action),
		Fee:     fee,
		To:      address.ExecAddress(execName),
	}
	return types.FormatTx(cfg, execName, tx)
}
