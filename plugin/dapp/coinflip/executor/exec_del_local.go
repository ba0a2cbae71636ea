package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//rollbackIndex 区块回滚时恢复旧状态的索引位，与 updateIndex 严格互逆
func (c *Coinflip) rollbackIndex(r *pty.ReceiptCoinflip, logTy int32) []*types.KeyValue {
	var kv []*types.KeyValue

	kv = append(kv, &types.KeyValue{Key: calcRoomStatusKey(r.Status, r.Index), Value: nil})
	for _, addr := range currentAddrs(r) {
		kv = append(kv, &types.KeyValue{Key: calcRoomStatusAddrKey(r.Status, addr, r.Index), Value: nil})
		kv = append(kv, &types.KeyValue{Key: calcRoomAddrKey(addr, r.Index), Value: nil})
	}
	if r.PrevStatus > 0 {
		record := types.Encode(&pty.CoinflipRecord{RoomId: r.RoomId, Index: r.PrevIndex})
		kv = append(kv, &types.KeyValue{Key: calcRoomStatusKey(r.PrevStatus, r.PrevIndex), Value: record})
		for _, addr := range prevAddrs(r, logTy) {
			kv = append(kv, &types.KeyValue{Key: calcRoomStatusAddrKey(r.PrevStatus, addr, r.PrevIndex), Value: record})
			kv = append(kv, &types.KeyValue{Key: calcRoomAddrKey(addr, r.PrevIndex), Value: record})
		}
	}

	if r.Status != r.PrevStatus {
		kv = append(kv, c.countKV(calcRoomStatusCountKey(r.Status), -1))
		for _, addr := range currentAddrs(r) {
			kv = append(kv, c.countKV(calcRoomStatusAddrCountKey(r.Status, addr), -1))
		}
		if r.PrevStatus > 0 {
			kv = append(kv, c.countKV(calcRoomStatusCountKey(r.PrevStatus), 1))
			for _, addr := range prevAddrs(r, logTy) {
				kv = append(kv, c.countKV(calcRoomStatusAddrCountKey(r.PrevStatus, addr), 1))
			}
		}
	}
	return kv
}

func (c *Coinflip) execDelLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return dbSet, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogCoinflipCreate, pty.TyLogCoinflipJoin, pty.TyLogCoinflipCommit,
			pty.TyLogCoinflipReveal, pty.TyLogCoinflipSettle, pty.TyLogCoinflipTimeout:
			var r pty.ReceiptCoinflip
			err := types.Decode(item.Log, &r)
			if err != nil {
				return nil, err
			}
			dbSet.KV = append(dbSet.KV, c.rollbackIndex(&r, item.Ty)...)
		}
	}
	return dbSet, nil
}

//ExecDelLocal_Create 回滚建房索引
func (c *Coinflip) ExecDelLocal_Create(payload *pty.CoinflipCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocal(receiptData)
}

//ExecDelLocal_Join 回滚入场索引
func (c *Coinflip) ExecDelLocal_Join(payload *pty.CoinflipJoin, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocal(receiptData)
}

//ExecDelLocal_Commit 回滚承诺索引
func (c *Coinflip) ExecDelLocal_Commit(payload *pty.CoinflipCommit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocal(receiptData)
}

//ExecDelLocal_Reveal 回滚揭示索引
func (c *Coinflip) ExecDelLocal_Reveal(payload *pty.CoinflipReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocal(receiptData)
}

//ExecDelLocal_Timeout 回滚超时回收索引
func (c *Coinflip) ExecDelLocal_Timeout(payload *pty.CoinflipTimeout, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocal(receiptData)
}
