package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//本局收据里出现过的、此刻也仍然有效的地址维度
func currentAddrs(r *pty.ReceiptCoinflip) []string {
	addrs := []string{r.CreateAddr}
	if r.JoinAddr != "" {
		addrs = append(addrs, r.JoinAddr)
	}
	return addrs
}

//prevStatus 阶段就已经在场的地址，入场收据里 joinAddr 是新出现的
func prevAddrs(r *pty.ReceiptCoinflip, logTy int32) []string {
	addrs := []string{r.CreateAddr}
	if r.JoinAddr != "" && logTy != pty.TyLogCoinflipJoin {
		addrs = append(addrs, r.JoinAddr)
	}
	return addrs
}

func (c *Coinflip) readCount(key []byte) int64 {
	value, err := c.GetLocalDB().Get(key)
	if err != nil || value == nil {
		return 0
	}
	var num types.Int64
	if types.Decode(value, &num) != nil {
		return 0
	}
	return num.Data
}

func (c *Coinflip) countKV(key []byte, delta int64) *types.KeyValue {
	count := c.readCount(key) + delta
	if count < 0 {
		count = 0
	}
	return &types.KeyValue{Key: key, Value: types.Encode(&types.Int64{Data: count})}
}

//updateIndex 把房间从旧状态的索引位挪到新状态的索引位
func (c *Coinflip) updateIndex(r *pty.ReceiptCoinflip, logTy int32) []*types.KeyValue {
	var kv []*types.KeyValue
	record := types.Encode(&pty.CoinflipRecord{RoomId: r.RoomId, Index: r.Index})

	if r.PrevStatus > 0 {
		kv = append(kv, &types.KeyValue{Key: calcRoomStatusKey(r.PrevStatus, r.PrevIndex), Value: nil})
		for _, addr := range prevAddrs(r, logTy) {
			kv = append(kv, &types.KeyValue{Key: calcRoomStatusAddrKey(r.PrevStatus, addr, r.PrevIndex), Value: nil})
			kv = append(kv, &types.KeyValue{Key: calcRoomAddrKey(addr, r.PrevIndex), Value: nil})
		}
	}
	kv = append(kv, &types.KeyValue{Key: calcRoomStatusKey(r.Status, r.Index), Value: record})
	for _, addr := range currentAddrs(r) {
		kv = append(kv, &types.KeyValue{Key: calcRoomStatusAddrKey(r.Status, addr, r.Index), Value: record})
		kv = append(kv, &types.KeyValue{Key: calcRoomAddrKey(addr, r.Index), Value: record})
	}

	//同一状态内的移位不影响计数
	if r.Status != r.PrevStatus {
		if r.PrevStatus > 0 {
			kv = append(kv, c.countKV(calcRoomStatusCountKey(r.PrevStatus), -1))
			for _, addr := range prevAddrs(r, logTy) {
				kv = append(kv, c.countKV(calcRoomStatusAddrCountKey(r.PrevStatus, addr), -1))
			}
		}
		kv = append(kv, c.countKV(calcRoomStatusCountKey(r.Status), 1))
		for _, addr := range currentAddrs(r) {
			kv = append(kv, c.countKV(calcRoomStatusAddrCountKey(r.Status, addr), 1))
		}
	}
	return kv
}

func (c *Coinflip) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
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
			dbSet.KV = append(dbSet.KV, c.updateIndex(&r, item.Ty)...)
		}
	}
	return dbSet, nil
}

//ExecLocal_Create 建房交易的本地索引
func (c *Coinflip) ExecLocal_Create(payload *pty.CoinflipCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}

//ExecLocal_Join 入场交易的本地索引
func (c *Coinflip) ExecLocal_Join(payload *pty.CoinflipJoin, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}

//ExecLocal_Commit 承诺交易的本地索引
func (c *Coinflip) ExecLocal_Commit(payload *pty.CoinflipCommit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}

//ExecLocal_Reveal 揭示交易的本地索引
func (c *Coinflip) ExecLocal_Reveal(payload *pty.CoinflipReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}

//ExecLocal_Timeout 超时回收交易的本地索引
func (c *Coinflip) ExecLocal_Timeout(payload *pty.CoinflipTimeout, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(receiptData)
}
