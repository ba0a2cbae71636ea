package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//Exec_Create 建房
func (c *Coinflip) Exec_Create(payload *pty.CoinflipCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.Create(payload)
}

//Exec_Join 入场
func (c *Coinflip) Exec_Join(payload *pty.CoinflipJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.Join(payload)
}

//Exec_Commit 提交承诺
func (c *Coinflip) Exec_Commit(payload *pty.CoinflipCommit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.Commit(payload)
}

//Exec_Reveal 揭示
func (c *Coinflip) Exec_Reveal(payload *pty.CoinflipReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.Reveal(payload)
}

//Exec_Timeout 超时回收
func (c *Coinflip) Exec_Timeout(payload *pty.CoinflipTimeout, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(c, tx, index)
	return action.Timeout(payload)
}
