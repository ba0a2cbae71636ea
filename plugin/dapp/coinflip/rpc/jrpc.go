package rpc

import (
	"encoding/hex"

	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//CoinflipCreateTx 构造建房的未签名交易
func (c *Jrpc) CoinflipCreateTx(parm *pty.CoinflipPreCreateTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	tx, err := pty.CreateRawCoinflipPreCreateTx(c.cli.GetConfig(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(types.Encode(tx))
	return nil
}

//CoinflipJoinTx 构造入场的未签名交易
func (c *Jrpc) CoinflipJoinTx(parm *pty.CoinflipPreJoinTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	tx, err := pty.CreateRawCoinflipPreJoinTx(c.cli.GetConfig(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(types.Encode(tx))
	return nil
}

//CoinflipCommitTx 构造承诺的未签名交易
func (c *Jrpc) CoinflipCommitTx(parm *pty.CoinflipPreCommitTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	tx, err := pty.CreateRawCoinflipPreCommitTx(c.cli.GetConfig(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(types.Encode(tx))
	return nil
}

//CoinflipRevealTx 构造揭示的未签名交易
func (c *Jrpc) CoinflipRevealTx(parm *pty.CoinflipPreRevealTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	tx, err := pty.CreateRawCoinflipPreRevealTx(c.cli.GetConfig(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(types.Encode(tx))
	return nil
}

//CoinflipTimeoutTx 构造超时回收的未签名交易
func (c *Jrpc) CoinflipTimeoutTx(parm *pty.CoinflipPreTimeoutTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	tx, err := pty.CreateRawCoinflipPreTimeoutTx(c.cli.GetConfig(), parm)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(types.Encode(tx))
	return nil
}

//CoinflipQueryRoomById 查询单个房间
func (c *Jrpc) CoinflipQueryRoomById(parm *pty.ReqCoinflipInfo, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(pty.CoinflipX, pty.FuncNameQueryRoomByID, parm)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

//CoinflipQueryRoomCount 查询房间数量
func (c *Jrpc) CoinflipQueryRoomCount(parm *pty.ReqCoinflipCount, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(pty.CoinflipX, pty.FuncNameQueryRoomCount, parm)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}
