package executor

import (
	"math"
	"strconv"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//Action 某笔交易在本执行器内的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.KVDB
	index        int
	api          client.QueueProtocolAPI
}

//NewAction 生成 action
func NewAction(c *Coinflip, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{
		coinsAccount: c.GetCoinsAccount(),
		db:           c.GetStateDB(),
		txhash:       hash,
		fromaddr:     fromaddr,
		blocktime:    c.GetBlockTime(),
		height:       c.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		localDB:      c.GetLocalDB(),
		index:        index,
		api:          c.GetAPI(),
	}
}

func (action *Action) heightIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

//优先读 manage 合约写入的配置，找不到时回退到老的 config key
func getManageKey(key string, db dbm.KV) ([]byte, error) {
	manageKey := types.ManageKey(key)
	value, err := db.Get([]byte(manageKey))
	if err != nil {
		configKey := types.ConfigKey(key)
		return db.Get([]byte(configKey))
	}
	return value, nil
}

func getConfValue(db dbm.KV, key string, defaultValue int64) int64 {
	var item types.ConfigItem
	value, err := getManageKey(key, db)
	if err != nil {
		return defaultValue
	}
	if value != nil {
		err = types.Decode(value, &item)
		if err != nil {
			glog.Error("getConfValue", "decode config item err", err, "key", key)
			return defaultValue
		}
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return defaultValue
	}
	//取最后一次配置的值
	v, err := strconv.ParseInt(values[len(values)-1], 10, 64)
	if err != nil {
		glog.Error("getConfValue", "parse config value err", err, "key", key)
		return defaultValue
	}
	return v
}

func getConfStringValue(db dbm.KV, key string, defaultValue string) string {
	var item types.ConfigItem
	value, err := getManageKey(key, db)
	if err != nil {
		return defaultValue
	}
	if value != nil {
		err = types.Decode(value, &item)
		if err != nil {
			return defaultValue
		}
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return defaultValue
	}
	return values[len(values)-1]
}

//押注前校验合约子账户余额是否足够
func (action *Action) checkExecAccountBalance(fromAddr string, toFrozen, toActive int64) bool {
	acc := action.coinsAccount.LoadExecAccount(fromAddr, action.execaddr)
	if acc.GetBalance() >= toFrozen && acc.GetFrozen() >= toActive {
		return true
	}
	return false
}

func (action *Action) readRoom(roomID string) (*pty.Coinflip, error) {
	data, err := action.db.Get(calcCoinflipKey(roomID))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrRoomNotExist
		}
		return nil, err
	}
	var room pty.Coinflip
	err = types.Decode(data, &room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (action *Action) saveRoom(room *pty.Coinflip) []*types.KeyValue {
	value := types.Encode(room)
	err := action.db.Set(calcCoinflipKey(room.RoomId), value)
	if err != nil {
		glog.Error("saveRoom", "set room err", err, "roomId", room.RoomId)
	}
	return []*types.KeyValue{{Key: calcCoinflipKey(room.RoomId), Value: value}}
}

//饱和加法，累计量溢出时钉在最大值而不是回绕
func satAdd(a, b int64) int64 {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt64
	}
	return sum
}

func (action *Action) readTotals() *pty.CoinflipTotals {
	var totals pty.CoinflipTotals
	data, err := action.db.Get(calcCoinflipTotalsKey())
	if err != nil || data == nil {
		return &totals
	}
	if types.Decode(data, &totals) != nil {
		return &pty.CoinflipTotals{}
	}
	return &totals
}

//updateTotals 在终局交易内原子更新全局累计量
func (action *Action) updateTotals(completed, cancelled, volume int64) []*types.KeyValue {
	totals := action.readTotals()
	totals.RoundsCompleted = satAdd(totals.RoundsCompleted, completed)
	totals.RoundsCancelled = satAdd(totals.RoundsCancelled, cancelled)
	totals.VolumeSettled = satAdd(totals.VolumeSettled, volume)
	value := types.Encode(totals)
	err := action.db.Set(calcCoinflipTotalsKey(), value)
	if err != nil {
		glog.Error("updateTotals", "set totals err", err)
	}
	return []*types.KeyValue{{Key: calcCoinflipTotalsKey(), Value: value}}
}

//推进状态机，同时把房间的活跃索引挪到本笔交易
func (action *Action) moveRoom(room *pty.Coinflip, status int32) {
	room.PrevStatus = room.Status
	room.Status = status
	room.PrevIndex = room.Index
	room.Index = action.heightIndex()
}

func (action *Action) getReceiptLog(room *pty.Coinflip, logTy int32) *types.ReceiptLog {
	r := &pty.ReceiptCoinflip{
		RoomId:     room.RoomId,
		Status:     room.Status,
		PrevStatus: room.PrevStatus,
		Addr:       action.fromaddr,
		CreateAddr: room.CreateAddr,
		JoinAddr:   room.JoinAddr,
		Index:      room.Index,
		PrevIndex:  room.PrevIndex,
	}
	return &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)}
}

func isTerminal(status int32) bool {
	return status == pty.CoinflipStatusCompleted || status == pty.CoinflipStatusCancelled
}

//Create 建房并冻结房主押注
func (action *Action) Create(create *pty.CoinflipCreate) (*types.Receipt, error) {
	stake := create.GetValue()
	minStake := getConfValue(action.db, pty.ConfNameMinStake, pty.DefaultMinStake)
	maxStake := getConfValue(action.db, pty.ConfNameMaxStake, pty.DefaultMaxStake)
	if stake <= 0 || stake < minStake || stake > maxStake {
		glog.Error("coinflip create", "addr", action.fromaddr, "stake", stake,
			"min", minStake, "max", maxStake)
		return nil, pty.ErrStakeOutOfRange
	}
	if !action.checkExecAccountBalance(action.fromaddr, stake, 0) {
		glog.Error("coinflip create", "addr", action.fromaddr, "execaddr", action.execaddr,
			"err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, stake)
	if err != nil {
		glog.Error("coinflip create", "addr", action.fromaddr, "execaddr", action.execaddr,
			"frozen stake", stake, "err", err)
		return nil, err
	}

	roomID := common.ToHex(action.txhash)
	joinTimeout := getConfValue(action.db, pty.ConfNameJoinTimeout, pty.DefaultJoinTimeout)
	room := &pty.Coinflip{
		RoomId:       roomID,
		CreateAddr:   action.fromaddr,
		Stake:        stake,
		TotalPot:     stake,
		Status:       pty.CoinflipStatusAwaitingJoiner,
		CreateSide:   pty.CoinSideUnknown,
		JoinSide:     pty.CoinSideUnknown,
		CreateTime:   action.blocktime,
		JoinDeadline: action.blocktime + joinTimeout,
		Index:        action.heightIndex(),
		CreateTxHash: roomID,
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	kv = append(kv, action.saveRoom(room)...)
	logs = append(logs, action.getReceiptLog(room, pty.TyLogCoinflipCreate))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Join 对手入场，冻结同额押注后进入承诺阶段
func (action *Action) Join(join *pty.CoinflipJoin) (*types.Receipt, error) {
	room, err := action.readRoom(join.GetRoomId())
	if err != nil {
		glog.Error("coinflip join", "roomId", join.GetRoomId(), "err", err)
		return nil, err
	}
	if room.Status != pty.CoinflipStatusAwaitingJoiner {
		return nil, pty.ErrRoomStatus
	}
	if action.blocktime >= room.JoinDeadline {
		return nil, pty.ErrDeadlinePassed
	}
	if action.fromaddr == room.CreateAddr {
		return nil, pty.ErrJoinSelfRoom
	}
	if !action.checkExecAccountBalance(action.fromaddr, room.Stake, 0) {
		glog.Error("coinflip join", "addr", action.fromaddr, "execaddr", action.execaddr,
			"err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, room.Stake)
	if err != nil {
		glog.Error("coinflip join", "addr", action.fromaddr, "execaddr", action.execaddr,
			"frozen stake", room.Stake, "err", err)
		return nil, err
	}

	commitTimeout := getConfValue(action.db, pty.ConfNameCommitTimeout, pty.DefaultCommitTimeout)
	room.JoinAddr = action.fromaddr
	room.TotalPot = 2 * room.Stake
	room.CommitDeadline = action.blocktime + commitTimeout
	action.moveRoom(room, pty.CoinflipStatusAwaitingCommitments)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	kv = append(kv, action.saveRoom(room)...)
	logs = append(logs, action.getReceiptLog(room, pty.TyLogCoinflipJoin))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Commit 提交承诺，双方都交齐后进入揭示阶段
func (action *Action) Commit(commit *pty.CoinflipCommit) (*types.Receipt, error) {
	room, err := action.readRoom(commit.GetRoomId())
	if err != nil {
		glog.Error("coinflip commit", "roomId", commit.GetRoomId(), "err", err)
		return nil, err
	}
	if room.Status != pty.CoinflipStatusAwaitingCommitments {
		return nil, pty.ErrRoomStatus
	}
	if action.blocktime >= room.CommitDeadline {
		return nil, pty.ErrDeadlinePassed
	}
	if err := pty.CheckCommitmentValue(commit.GetCommitment()); err != nil {
		glog.Error("coinflip commit", "roomId", room.RoomId, "addr", action.fromaddr, "err", err)
		return nil, err
	}
	switch action.fromaddr {
	case room.CreateAddr:
		if len(room.CreateCommit) != 0 {
			return nil, pty.ErrDupCommit
		}
		room.CreateCommit = commit.GetCommitment()
	case room.JoinAddr:
		if len(room.JoinCommit) != 0 {
			return nil, pty.ErrDupCommit
		}
		room.JoinCommit = commit.GetCommitment()
	default:
		return nil, pty.ErrNotRoomPlayer
	}

	status := room.Status
	if len(room.CreateCommit) != 0 && len(room.JoinCommit) != 0 {
		revealTimeout := getConfValue(action.db, pty.ConfNameRevealTimeout, pty.DefaultRevealTimeout)
		room.RevealDeadline = action.blocktime + revealTimeout
		status = pty.CoinflipStatusAwaitingReveal
	}
	action.moveRoom(room, status)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.saveRoom(room)...)
	logs = append(logs, action.getReceiptLog(room, pty.TyLogCoinflipCommit))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Reveal 揭示 side+secret，双方都揭示后在同一笔交易内完成开奖和清算
func (action *Action) Reveal(reveal *pty.CoinflipReveal) (*types.Receipt, error) {
	room, err := action.readRoom(reveal.GetRoomId())
	if err != nil {
		glog.Error("coinflip reveal", "roomId", reveal.GetRoomId(), "err", err)
		return nil, err
	}
	if room.Status != pty.CoinflipStatusAwaitingReveal {
		return nil, pty.ErrRoomStatus
	}
	if action.blocktime >= room.RevealDeadline {
		return nil, pty.ErrDeadlinePassed
	}

	var commitment []byte
	switch action.fromaddr {
	case room.CreateAddr:
		if room.CreateSide != pty.CoinSideUnknown {
			return nil, pty.ErrDupReveal
		}
		commitment = room.CreateCommit
	case room.JoinAddr:
		if room.JoinSide != pty.CoinSideUnknown {
			return nil, pty.ErrDupReveal
		}
		commitment = room.JoinCommit
	default:
		return nil, pty.ErrNotRoomPlayer
	}
	err = pty.CheckCommitment(commitment, reveal.GetSide(), reveal.GetSecret())
	if err != nil {
		glog.Error("coinflip reveal", "roomId", room.RoomId, "addr", action.fromaddr, "err", err)
		return nil, err
	}
	if action.fromaddr == room.CreateAddr {
		room.CreateSide = reveal.GetSide()
		room.CreateSecret = reveal.GetSecret()
	} else {
		room.JoinSide = reveal.GetSide()
		room.JoinSecret = reveal.GetSecret()
	}

	if room.CreateSide == pty.CoinSideUnknown || room.JoinSide == pty.CoinSideUnknown {
		action.moveRoom(room, room.Status)
		var logs []*types.ReceiptLog
		var kv []*types.KeyValue
		kv = append(kv, action.saveRoom(room)...)
		logs = append(logs, action.getReceiptLog(room, pty.TyLogCoinflipReveal))
		return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
	}
	return action.settle(room)
}

//settle 开奖并按结果划转冻结押注
func (action *Action) settle(room *pty.Coinflip) (*types.Receipt, error) {
	room.CoinSide = flipCoin(room.CreateSecret, room.JoinSecret, action.height, action.blocktime)
	room.Result = settleResult(room.CreateSide, room.JoinSide, room.CoinSide)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	var err error
	switch room.Result {
	case pty.IsTie:
		logs, kv, err = action.settleTie(room)
	case pty.IsCreatorWin:
		logs, kv, err = action.settleWin(room, room.CreateAddr, room.JoinAddr)
	case pty.IsJoinerWin:
		logs, kv, err = action.settleWin(room, room.JoinAddr, room.CreateAddr)
	}
	if err != nil {
		return nil, err
	}

	room.CloseTime = action.blocktime
	action.moveRoom(room, pty.CoinflipStatusCompleted)
	kv = append(kv, action.saveRoom(room)...)
	kv = append(kv, action.updateTotals(1, 0, room.TotalPot)...)
	logs = append(logs, action.getReceiptLog(room, pty.TyLogCoinflipSettle))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//settleWin 胜者拿回自己的押注并赢走对方押注减抽水，抽水进 house 地址
func (action *Action) settleWin(room *pty.Coinflip, winner, loser string) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	feeBps := getConfValue(action.db, pty.ConfNameFeeRateBps, pty.DefaultFeeRateBps)
	houseAddr := getConfStringValue(action.db, pty.ConfNameHouseAddr, "")
	fee := calcFee(room.TotalPot, feeBps)
	if houseAddr == "" {
		//未配置抽水地址时不抽水
		fee = 0
	}
	if !action.checkExecAccountBalance(loser, 0, room.Stake) ||
		!action.checkExecAccountBalance(winner, 0, room.Stake) {
		glog.Error("coinflip settleWin", "roomId", room.RoomId, "err", types.ErrNoBalance)
		return nil, nil, types.ErrNoBalance
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receipt, err := action.coinsAccount.ExecActive(winner, action.execaddr, room.Stake)
	if err != nil {
		glog.Error("coinflip settleWin", "active winner stake", room.Stake, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	receipt, err = action.coinsAccount.ExecTransferFrozen(loser, winner, action.execaddr, room.Stake-fee)
	if err != nil {
		action.coinsAccount.ExecFrozen(winner, action.execaddr, room.Stake) // rollback
		glog.Error("coinflip settleWin", "transfer pot", room.Stake-fee, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	if fee > 0 {
		receipt, err = action.coinsAccount.ExecTransferFrozen(loser, houseAddr, action.execaddr, fee)
		if err != nil {
			action.coinsAccount.ExecTransfer(winner, loser, action.execaddr, room.Stake-fee) // rollback
			action.coinsAccount.ExecFrozen(loser, action.execaddr, room.Stake-fee)           // rollback
			action.coinsAccount.ExecFrozen(winner, action.execaddr, room.Stake)              // rollback
			glog.Error("coinflip settleWin", "transfer fee", fee, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	room.Winner = winner
	room.HouseFee = fee
	return logs, kv, nil
}

//settleTie 平局各自退款，可配置的平局手续费从双方各扣一半
func (action *Action) settleTie(room *pty.Coinflip) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	tieFeeBps := getConfValue(action.db, pty.ConfNameTieFeeBps, pty.DefaultTieFeeBps)
	houseAddr := getConfStringValue(action.db, pty.ConfNameHouseAddr, "")
	//单边手续费，按各自押注计
	feePer := calcFee(room.Stake, tieFeeBps)
	if houseAddr == "" {
		feePer = 0
	}
	if !action.checkExecAccountBalance(room.CreateAddr, 0, room.Stake) ||
		!action.checkExecAccountBalance(room.JoinAddr, 0, room.Stake) {
		glog.Error("coinflip settleTie", "roomId", room.RoomId, "err", types.ErrNoBalance)
		return nil, nil, types.ErrNoBalance
	}
	refund := room.Stake - feePer
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	addrs := []string{room.CreateAddr, room.JoinAddr}
	for i, addr := range addrs {
		l, k, err := action.tiePayout(addr, houseAddr, feePer, refund)
		if err != nil {
			if i > 0 {
				action.undoTiePayout(addrs[0], houseAddr, feePer, refund)
			}
			glog.Error("coinflip settleTie", "roomId", room.RoomId, "addr", addr, "err", err)
			return nil, nil, err
		}
		logs = append(logs, l...)
		kv = append(kv, k...)
	}
	room.HouseFee = 2 * feePer
	return logs, kv, nil
}

//tiePayout 单个玩家的平局清算：先抽水后退款，退款失败时撤销本玩家的抽水
func (action *Action) tiePayout(addr, houseAddr string, feePer, refund int64) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if feePer > 0 {
		receipt, err := action.coinsAccount.ExecTransferFrozen(addr, houseAddr, action.execaddr, feePer)
		if err != nil {
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}
	receipt, err := action.coinsAccount.ExecActive(addr, action.execaddr, refund)
	if err != nil {
		if feePer > 0 {
			action.coinsAccount.ExecTransfer(houseAddr, addr, action.execaddr, feePer) // rollback
			action.coinsAccount.ExecFrozen(addr, action.execaddr, feePer)             // rollback
		}
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return logs, kv, nil
}

//undoTiePayout 撤销一个已完成玩家的平局清算
func (action *Action) undoTiePayout(addr, houseAddr string, feePer, refund int64) {
	action.coinsAccount.ExecFrozen(addr, action.execaddr, refund) // rollback
	if feePer > 0 {
		action.coinsAccount.ExecTransfer(houseAddr, addr, action.execaddr, feePer) // rollback
		action.coinsAccount.ExecFrozen(addr, action.execaddr, feePer)              // rollback
	}
}

//Timeout 任何人都可以在截止后发起超时回收，退还各阶段已记录的押注
func (action *Action) Timeout(timeout *pty.CoinflipTimeout) (*types.Receipt, error) {
	room, err := action.readRoom(timeout.GetRoomId())
	if err != nil {
		glog.Error("coinflip timeout", "roomId", timeout.GetRoomId(), "err", err)
		return nil, err
	}
	if isTerminal(room.Status) {
		return nil, pty.ErrRoomFinished
	}

	switch room.Status {
	case pty.CoinflipStatusAwaitingJoiner:
		if action.blocktime < room.JoinDeadline {
			return nil, pty.ErrDeadlineNotReached
		}
		return action.reclaim(room, []string{room.CreateAddr})
	case pty.CoinflipStatusAwaitingCommitments:
		if action.blocktime < room.CommitDeadline {
			return nil, pty.ErrDeadlineNotReached
		}
		return action.reclaim(room, []string{room.CreateAddr, room.JoinAddr})
	case pty.CoinflipStatusAwaitingReveal:
		if action.blocktime < room.RevealDeadline {
			return nil, pty.ErrDeadlineNotReached
		}
		//揭示超时不判负，双方全额退款，单方已揭示也一样
		return action.reclaim(room, []string{room.CreateAddr, room.JoinAddr})
	}
	return nil, pty.ErrRoomStatus
}

//reclaim 解冻并退还各地址的押注，房间进入 Cancelled 终态
func (action *Action) reclaim(room *pty.Coinflip, addrs []string) (*types.Receipt, error) {
	for _, addr := range addrs {
		if !action.checkExecAccountBalance(addr, 0, room.Stake) {
			glog.Error("coinflip reclaim", "roomId", room.RoomId, "addr", addr, "err", types.ErrNoBalance)
			return nil, types.ErrNoBalance
		}
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	for i, addr := range addrs {
		receipt, err := action.coinsAccount.ExecActive(addr, action.execaddr, room.Stake)
		if err != nil {
			if i > 0 {
				action.coinsAccount.ExecFrozen(addrs[0], action.execaddr, room.Stake) // rollback
			}
			glog.Error("coinflip reclaim", "addr", addr, "stake", room.Stake, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	room.CloseTime = action.blocktime
	action.moveRoom(room, pty.CoinflipStatusCancelled)
	kv = append(kv, action.saveRoom(room)...)
	kv = append(kv, action.updateTotals(0, 1, 0)...)
	logs = append(logs, action.getReceiptLog(room, pty.TyLogCoinflipTimeout))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

