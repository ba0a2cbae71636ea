package executor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/crypto"
	dbm "github.com/33cn/chain33/common/db"
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
	"github.com/stretchr/testify/require"
)

var (
	cfg = types.NewChain33Config(types.GetDefaultCfgstring())

	privCreator = mustPrivkey("4257D8692EF7FE13C68B65D6A52F03933DB2FA5CE8FAF210B5B8B80C721CED01")
	privJoiner  = mustPrivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privOther   = mustPrivkey("B0BB75BC49A787A71F4834DA18614763B53A18291ECE6B5EDEC3AD19D150C3E7")

	startBlockTime int64 = 1699000000
)

func init() {
	Init(pty.CoinflipX, cfg, nil)
}

func mustPrivkey(key string) crypto.PrivKey {
	cr, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := cr.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

type testEnv struct {
	dir      string
	stateDB  dbm.DB
	kvdb     dbm.KVDB
	exec     *Coinflip
	accCoin  *account.DB
	execAddr string
	height   int64
	bt       int64
}

func newTestEnv(t *testing.T) *testEnv {
	dir, stateDB, kvdb := util.CreateTestDB()
	e := &testEnv{
		dir:      dir,
		stateDB:  stateDB,
		kvdb:     kvdb,
		execAddr: dapp.ExecAddress(pty.CoinflipX),
		height:   10,
		bt:       startBlockTime,
	}
	e.accCoin = account.NewCoinsAccount(cfg)
	e.accCoin.SetDB(stateDB)
	for _, priv := range []crypto.PrivKey{privCreator, privJoiner, privOther} {
		addr := addrOf(priv)
		e.accCoin.SaveExecAccount(e.execAddr, &types.Account{
			Balance: 1000 * types.DefaultCoinPrecision,
			Addr:    addr,
		})
	}
	driver := newCoinflip().(*Coinflip)
	driver.SetStateDB(stateDB)
	driver.SetLocalDB(kvdb)
	driver.SetEnv(e.height, e.bt, 1)
	e.exec = driver
	return e
}

func (e *testEnv) close() {
	util.CloseTestDB(e.dir, e.stateDB)
}

func (e *testEnv) setEnv(height, blocktime int64) {
	e.height = height
	e.bt = blocktime
	e.exec.SetEnv(height, blocktime, 1)
}

func addrOf(priv crypto.PrivKey) string {
	tx := &types.Transaction{Execer: []byte(pty.CoinflipX), To: "x", Nonce: 1}
	tx.Sign(types.SECP256K1, priv)
	return tx.From()
}

func signedTx(t *testing.T, action *pty.CoinflipAction, priv crypto.PrivKey) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(pty.CoinflipX),
		Payload: types.Encode(action),
		Fee:     1e6,
		Nonce:   rand.Int63(),
		To:      dapp.ExecAddress(pty.CoinflipX),
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

//执行一笔交易并把 localdb 索引落库，贴近真实区块执行顺序
func (e *testEnv) execTx(t *testing.T, action *pty.CoinflipAction, priv crypto.PrivKey) (*types.Receipt, error) {
	tx := signedTx(t, action, priv)
	receipt, err := e.exec.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	for _, kv := range receipt.KV {
		require.NoError(t, e.stateDB.Set(kv.Key, kv.Value))
	}
	receiptData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := e.exec.ExecLocal(tx, receiptData, 0)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, e.kvdb.Set(kv.Key, kv.Value))
	}
	return receipt, nil
}

func createAction(stake int64) *pty.CoinflipAction {
	return &pty.CoinflipAction{
		Ty:    pty.CoinflipActionCreate,
		Value: &pty.CoinflipAction_Create{Create: &pty.CoinflipCreate{Value: stake}},
	}
}

func joinAction(roomID string) *pty.CoinflipAction {
	return &pty.CoinflipAction{
		Ty:    pty.CoinflipActionJoin,
		Value: &pty.CoinflipAction_Join{Join: &pty.CoinflipJoin{RoomId: roomID}},
	}
}

func commitAction(roomID string, side int32, secret uint64) *pty.CoinflipAction {
	return &pty.CoinflipAction{
		Ty: pty.CoinflipActionCommit,
		Value: &pty.CoinflipAction_Commit{Commit: &pty.CoinflipCommit{
			RoomId:     roomID,
			Commitment: pty.CalcCommitment(side, secret),
		}},
	}
}

func revealAction(roomID string, side int32, secret uint64) *pty.CoinflipAction {
	return &pty.CoinflipAction{
		Ty: pty.CoinflipActionReveal,
		Value: &pty.CoinflipAction_Reveal{Reveal: &pty.CoinflipReveal{
			RoomId: roomID,
			Side:   side,
			Secret: secret,
		}},
	}
}

func timeoutAction(roomID string) *pty.CoinflipAction {
	return &pty.CoinflipAction{
		Ty:    pty.CoinflipActionTimeout,
		Value: &pty.CoinflipAction_Timeout{Timeout: &pty.CoinflipTimeout{RoomId: roomID}},
	}
}

func roomIDFromReceipt(t *testing.T, receipt *types.Receipt) string {
	for _, item := range receipt.Logs {
		if item.Ty == pty.TyLogCoinflipCreate {
			var r pty.ReceiptCoinflip
			require.NoError(t, types.Decode(item.Log, &r))
			return r.RoomId
		}
	}
	t.Fatal("create log not found")
	return ""
}

func (e *testEnv) room(t *testing.T, roomID string) *pty.Coinflip {
	msg, err := e.exec.Query_QueryRoomById(&pty.ReqCoinflipInfo{RoomId: roomID})
	require.NoError(t, err)
	return msg.(*pty.ReplyCoinflipInfo).GetRoom()
}

func (e *testEnv) execBalance(addr string) *types.Account {
	return e.accCoin.LoadExecAccount(addr, e.execAddr)
}

func TestCreateAndJoin(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 100 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)
	addrB := addrOf(privJoiner)

	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	roomID := roomIDFromReceipt(t, receipt)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusAwaitingJoiner), room.Status)
	require.Equal(t, addrA, room.CreateAddr)
	require.Equal(t, stake, room.Stake)
	require.Equal(t, e.bt+pty.DefaultJoinTimeout, room.JoinDeadline)
	require.Equal(t, stake, e.execBalance(addrA).GetFrozen())

	//自己加入自己建的房
	_, err = e.execTx(t, joinAction(roomID), privCreator)
	require.Equal(t, pty.ErrJoinSelfRoom, err)

	e.setEnv(11, e.bt+10)
	_, err = e.execTx(t, joinAction(roomID), privJoiner)
	require.NoError(t, err)

	room = e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusAwaitingCommitments), room.Status)
	require.Equal(t, addrB, room.JoinAddr)
	require.Equal(t, 2*stake, room.TotalPot)
	require.Equal(t, stake, e.execBalance(addrB).GetFrozen())

	//重复加入
	_, err = e.execTx(t, joinAction(roomID), privOther)
	require.Equal(t, pty.ErrRoomStatus, err)
}

func TestCreateStakeRange(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	_, err := e.execTx(t, createAction(0), privCreator)
	require.Equal(t, pty.ErrStakeOutOfRange, err)

	//低于默认下限 1 个币
	_, err = e.execTx(t, createAction(types.DefaultCoinPrecision/10), privCreator)
	require.Equal(t, pty.ErrStakeOutOfRange, err)

	//超出余额
	_, err = e.execTx(t, createAction(5000*types.DefaultCoinPrecision), privCreator)
	require.Equal(t, types.ErrNoBalance, err)
}

func runToReveal(t *testing.T, e *testEnv, stake int64, sideA, sideB int32, secretA, secretB uint64) string {
	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	roomID := roomIDFromReceipt(t, receipt)

	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, joinAction(roomID), privJoiner)
	require.NoError(t, err)

	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, commitAction(roomID, sideA, secretA), privCreator)
	require.NoError(t, err)
	_, err = e.execTx(t, commitAction(roomID, sideB, secretB), privJoiner)
	require.NoError(t, err)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusAwaitingReveal), room.Status)
	return roomID
}

func TestFullGameDifferentSides(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 100 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)
	addrB := addrOf(privJoiner)
	secretA := uint64(0x9e3779b97f4a7c15)
	secretB := uint64(0xdeadbeefcafe1234)

	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, secretA, secretB)

	e.setEnv(e.height+1, e.bt+10)
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA), privCreator)
	require.NoError(t, err)
	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusAwaitingReveal), room.Status)
	require.Equal(t, int32(pty.CoinSideHeads), room.CreateSide)

	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideTails, secretB), privJoiner)
	require.NoError(t, err)

	room = e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCompleted), room.Status)
	expectCoin := flipCoin(secretA, secretB, e.height, e.bt)
	require.Equal(t, expectCoin, room.CoinSide)

	winner, loser := addrA, addrB
	if expectCoin == pty.CoinSideTails {
		winner, loser = addrB, addrA
	}
	require.Equal(t, winner, room.Winner)
	//未配置抽水地址，无手续费
	require.Equal(t, int64(0), room.HouseFee)
	require.Equal(t, int64(0), e.execBalance(winner).GetFrozen())
	require.Equal(t, int64(0), e.execBalance(loser).GetFrozen())
	require.Equal(t, 1100*types.DefaultCoinPrecision, e.execBalance(winner).GetBalance())
	require.Equal(t, 900*types.DefaultCoinPrecision, e.execBalance(loser).GetBalance())

	//终态不可再操作
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideTails, secretB), privJoiner)
	require.Equal(t, pty.ErrRoomStatus, err)
	_, err = e.execTx(t, timeoutAction(roomID), privOther)
	require.Equal(t, pty.ErrRoomFinished, err)
}

func TestFullGameTieRefund(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 50 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)
	addrB := addrOf(privJoiner)

	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideHeads, 7777777, 8888888)

	e.setEnv(e.height+1, e.bt+10)
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideHeads, 7777777), privCreator)
	require.NoError(t, err)
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideHeads, 8888888), privJoiner)
	require.NoError(t, err)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCompleted), room.Status)
	require.Equal(t, pty.IsTie, room.Result)
	require.Equal(t, "", room.Winner)
	for _, addr := range []string{addrA, addrB} {
		require.Equal(t, int64(0), e.execBalance(addr).GetFrozen())
		require.Equal(t, 1000*types.DefaultCoinPrecision, e.execBalance(addr).GetBalance())
	}
}

func TestHouseFee(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 100 * types.DefaultCoinPrecision
	houseAddr := addrOf(privOther)
	setManageConf(t, e.stateDB, pty.ConfNameHouseAddr, houseAddr)

	secretA := uint64(0x1122334455667788)
	secretB := uint64(0x8877665544332211)
	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, secretA, secretB)

	e.setEnv(e.height+1, e.bt+10)
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA), privCreator)
	require.NoError(t, err)
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideTails, secretB), privJoiner)
	require.NoError(t, err)

	room := e.room(t, roomID)
	//默认 300bps：200 个币抽 6 个
	wantFee := 2 * stake * pty.DefaultFeeRateBps / pty.BpsDenominator
	require.Equal(t, wantFee, room.HouseFee)
	require.Equal(t, 1000*types.DefaultCoinPrecision+wantFee, e.execBalance(houseAddr).GetBalance())
	require.Equal(t, 2*stake-wantFee,
		e.execBalance(room.Winner).GetBalance()-(1000*types.DefaultCoinPrecision-stake))
}

func TestRevealValidation(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 10 * types.DefaultCoinPrecision
	secretA := uint64(123456789)
	secretB := uint64(987654321)
	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, secretA, secretB)

	e.setEnv(e.height+1, e.bt+10)
	//换一面揭示
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideTails, secretA), privCreator)
	require.Equal(t, pty.ErrCommitMismatch, err)
	//换一个 secret 揭示
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA+1), privCreator)
	require.Equal(t, pty.ErrCommitMismatch, err)
	//非玩家揭示
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA), privOther)
	require.Equal(t, pty.ErrNotRoomPlayer, err)

	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA), privCreator)
	require.NoError(t, err)
	//重复揭示
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA), privCreator)
	require.Equal(t, pty.ErrDupReveal, err)
}

func TestCommitValidation(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 10 * types.DefaultCoinPrecision

	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	roomID := roomIDFromReceipt(t, receipt)

	//入场前不能提交承诺
	_, err = e.execTx(t, commitAction(roomID, pty.CoinSideHeads, 333333), privCreator)
	require.Equal(t, pty.ErrRoomStatus, err)

	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, joinAction(roomID), privJoiner)
	require.NoError(t, err)

	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, commitAction(roomID, pty.CoinSideHeads, 333333), privCreator)
	require.NoError(t, err)
	//重复承诺
	_, err = e.execTx(t, commitAction(roomID, pty.CoinSideTails, 444444), privCreator)
	require.Equal(t, pty.ErrDupCommit, err)
	//非玩家承诺
	_, err = e.execTx(t, commitAction(roomID, pty.CoinSideHeads, 555555), privOther)
	require.Equal(t, pty.ErrNotRoomPlayer, err)

	//全零承诺在提交时拒绝
	zero := &pty.CoinflipAction{
		Ty: pty.CoinflipActionCommit,
		Value: &pty.CoinflipAction_Commit{Commit: &pty.CoinflipCommit{
			RoomId:     roomID,
			Commitment: make([]byte, pty.CommitmentLen),
		}},
	}
	_, err = e.execTx(t, zero, privJoiner)
	require.Equal(t, pty.ErrInvalidCommitment, err)
	//由黑名单 secret 推出的退化承诺同样在提交时拒绝，不会入库
	_, err = e.execTx(t, commitAction(roomID, pty.CoinSideTails, 0), privJoiner)
	require.Equal(t, pty.ErrWeakSecret, err)
	room := e.room(t, roomID)
	require.Empty(t, room.JoinCommit)
}

func TestJoinTimeoutReclaim(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 20 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)

	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	roomID := roomIDFromReceipt(t, receipt)

	//还没到点
	_, err = e.execTx(t, timeoutAction(roomID), privOther)
	require.Equal(t, pty.ErrDeadlineNotReached, err)

	e.setEnv(e.height+1, e.bt+pty.DefaultJoinTimeout+1)
	//过了截止时间就不能再入场
	_, err = e.execTx(t, joinAction(roomID), privJoiner)
	require.Equal(t, pty.ErrDeadlinePassed, err)

	//任何人都可以触发回收
	_, err = e.execTx(t, timeoutAction(roomID), privOther)
	require.NoError(t, err)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCancelled), room.Status)
	require.Equal(t, int64(0), e.execBalance(addrA).GetFrozen())
	require.Equal(t, 1000*types.DefaultCoinPrecision, e.execBalance(addrA).GetBalance())

	//幂等：再次回收报终态错
	_, err = e.execTx(t, timeoutAction(roomID), privOther)
	require.Equal(t, pty.ErrRoomFinished, err)
}

func TestCommitTimeoutRefundsBoth(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 20 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)
	addrB := addrOf(privJoiner)

	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	roomID := roomIDFromReceipt(t, receipt)

	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, joinAction(roomID), privJoiner)
	require.NoError(t, err)

	//只有一方提交了承诺，另一方拖到超时
	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, commitAction(roomID, pty.CoinSideHeads, 111111), privCreator)
	require.NoError(t, err)

	e.setEnv(e.height+1, e.bt+pty.DefaultCommitTimeout+1)
	_, err = e.execTx(t, timeoutAction(roomID), privOther)
	require.NoError(t, err)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCancelled), room.Status)
	for _, addr := range []string{addrA, addrB} {
		require.Equal(t, int64(0), e.execBalance(addr).GetFrozen())
		require.Equal(t, 1000*types.DefaultCoinPrecision, e.execBalance(addr).GetBalance())
	}
}

func TestRevealTimeoutRefundsBoth(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 30 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)
	addrB := addrOf(privJoiner)
	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, 123123123, 456456456)

	e.setEnv(e.height+1, e.bt+10)
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideHeads, 123123123), privCreator)
	require.NoError(t, err)

	//对手拒不揭示，超时后双方全额退款，不判负
	e.setEnv(e.height+1, e.bt+pty.DefaultRevealTimeout+1)
	_, err = e.execTx(t, timeoutAction(roomID), privOther)
	require.NoError(t, err)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCancelled), room.Status)
	require.Empty(t, room.Winner)
	require.Zero(t, room.HouseFee)
	for _, addr := range []string{addrA, addrB} {
		require.Equal(t, 1000*types.DefaultCoinPrecision, e.execBalance(addr).GetBalance())
		require.Zero(t, e.execBalance(addr).GetFrozen())
	}
}

func TestRevealTimeoutNobodyRevealed(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 30 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)
	addrB := addrOf(privJoiner)
	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, 123123123, 456456456)

	e.setEnv(e.height+1, e.bt+pty.DefaultRevealTimeout+1)
	_, err := e.execTx(t, timeoutAction(roomID), privOther)
	require.NoError(t, err)

	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCancelled), room.Status)
	for _, addr := range []string{addrA, addrB} {
		require.Equal(t, 1000*types.DefaultCoinPrecision, e.execBalance(addr).GetBalance())
	}
}

func TestQueryListAndCount(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 10 * types.DefaultCoinPrecision
	addrA := addrOf(privCreator)

	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	roomID := roomIDFromReceipt(t, receipt)

	msg, err := e.exec.Query_QueryRoomListByStatus(&pty.ReqCoinflipListByStatus{
		Status: pty.CoinflipStatusAwaitingJoiner,
	})
	require.NoError(t, err)
	rooms := msg.(*pty.ReplyCoinflipList).GetRooms()
	require.Len(t, rooms, 1)
	require.Equal(t, roomID, rooms[0].RoomId)

	msg, err = e.exec.Query_QueryRoomListByStatusAddr(&pty.ReqCoinflipListByStatus{
		Status:  pty.CoinflipStatusAwaitingJoiner,
		Address: addrA,
	})
	require.NoError(t, err)
	require.Len(t, msg.(*pty.ReplyCoinflipList).GetRooms(), 1)

	msg, err = e.exec.Query_QueryRoomCount(&pty.ReqCoinflipCount{
		Status: pty.CoinflipStatusAwaitingJoiner,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), msg.(*pty.ReplyCoinflipCount).GetCount())

	//入场后等待对手的索引应该被清掉
	e.setEnv(e.height+1, e.bt+10)
	_, err = e.execTx(t, joinAction(roomID), privJoiner)
	require.NoError(t, err)

	msg, err = e.exec.Query_QueryRoomCount(&pty.ReqCoinflipCount{
		Status: pty.CoinflipStatusAwaitingJoiner,
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), msg.(*pty.ReplyCoinflipCount).GetCount())

	msg, err = e.exec.Query_QueryRoomListByStatus(&pty.ReqCoinflipListByStatus{
		Status: pty.CoinflipStatusAwaitingCommitments,
	})
	require.NoError(t, err)
	require.Len(t, msg.(*pty.ReplyCoinflipList).GetRooms(), 1)

	//查询不存在的房间
	_, err = e.exec.Query_QueryRoomById(&pty.ReqCoinflipInfo{RoomId: "0xdeadbeef"})
	require.Equal(t, pty.ErrRoomNotExist, err)
}

func TestExecDelLocalRollback(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 10 * types.DefaultCoinPrecision

	tx := signedTx(t, createAction(stake), privCreator)
	receipt, err := e.exec.Exec(tx, 0)
	require.NoError(t, err)
	for _, kv := range receipt.KV {
		require.NoError(t, e.stateDB.Set(kv.Key, kv.Value))
	}
	receiptData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := e.exec.ExecLocal(tx, receiptData, 0)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, e.kvdb.Set(kv.Key, kv.Value))
	}

	msg, err := e.exec.Query_QueryRoomCount(&pty.ReqCoinflipCount{Status: pty.CoinflipStatusAwaitingJoiner})
	require.NoError(t, err)
	require.Equal(t, int64(1), msg.(*pty.ReplyCoinflipCount).GetCount())

	//回滚后索引和计数都要归零
	set, err = e.exec.ExecDelLocal(tx, receiptData, 0)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, e.kvdb.Set(kv.Key, kv.Value))
	}
	msg, err = e.exec.Query_QueryRoomCount(&pty.ReqCoinflipCount{Status: pty.CoinflipStatusAwaitingJoiner})
	require.NoError(t, err)
	require.Equal(t, int64(0), msg.(*pty.ReplyCoinflipCount).GetCount())

	msg, err = e.exec.Query_QueryRoomListByStatus(&pty.ReqCoinflipListByStatus{Status: pty.CoinflipStatusAwaitingJoiner})
	require.NoError(t, err)
	require.Len(t, msg.(*pty.ReplyCoinflipList).GetRooms(), 0)
}

func TestTotalsAccumulate(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 100 * types.DefaultCoinPrecision

	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, 13131313, 24242424)
	e.setEnv(e.height+1, e.bt+10)
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideHeads, 13131313), privCreator)
	require.NoError(t, err)
	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideTails, 24242424), privJoiner)
	require.NoError(t, err)

	msg, err := e.exec.Query_QueryTotals(&types.ReqNil{})
	require.NoError(t, err)
	totals := msg.(*pty.CoinflipTotals)
	require.Equal(t, int64(1), totals.RoundsCompleted)
	require.Equal(t, int64(0), totals.RoundsCancelled)
	require.Equal(t, 2*stake, totals.VolumeSettled)

	//超时取消进 cancelled 计数，不计成交量
	receipt, err := e.execTx(t, createAction(stake), privCreator)
	require.NoError(t, err)
	cancelID := roomIDFromReceipt(t, receipt)
	e.setEnv(e.height+1, e.bt+pty.DefaultJoinTimeout+1)
	_, err = e.execTx(t, timeoutAction(cancelID), privOther)
	require.NoError(t, err)

	msg, err = e.exec.Query_QueryTotals(&types.ReqNil{})
	require.NoError(t, err)
	totals = msg.(*pty.CoinflipTotals)
	require.Equal(t, int64(1), totals.RoundsCompleted)
	require.Equal(t, int64(1), totals.RoundsCancelled)
	require.Equal(t, 2*stake, totals.VolumeSettled)
}

func TestQueryRedactsUnfinishedSecrets(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	stake := 10 * types.DefaultCoinPrecision
	secretA := uint64(91919191)

	roomID := runToReveal(t, e, stake, pty.CoinSideHeads, pty.CoinSideTails, secretA, 82828282)
	e.setEnv(e.height+1, e.bt+10)
	_, err := e.execTx(t, revealAction(roomID, pty.CoinSideHeads, secretA), privCreator)
	require.NoError(t, err)

	//只揭示了一方时对外不暴露随机数
	room := e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusAwaitingReveal), room.Status)
	require.Zero(t, room.CreateSecret)

	_, err = e.execTx(t, revealAction(roomID, pty.CoinSideTails, 82828282), privJoiner)
	require.NoError(t, err)
	room = e.room(t, roomID)
	require.Equal(t, int32(pty.CoinflipStatusCompleted), room.Status)
	require.Equal(t, secretA, room.CreateSecret)
}

func TestQueryConfig(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()

	msg, err := e.exec.Query_QueryConfig(&types.ReqNil{})
	require.NoError(t, err)
	conf := msg.(*pty.ReplyCoinflipConfig)
	require.Equal(t, int64(pty.DefaultMinStake), conf.MinStake)
	require.Equal(t, int64(pty.DefaultFeeRateBps), conf.FeeRateBps)
	require.Empty(t, conf.HouseAddr)

	setManageConf(t, e.stateDB, pty.ConfNameFeeRateBps, "5000")
	msg, err = e.exec.Query_QueryConfig(&types.ReqNil{})
	require.NoError(t, err)
	//超过上限的配置按 1000bps 截断
	require.Equal(t, int64(pty.MaxFeeRateBps), msg.(*pty.ReplyCoinflipConfig).FeeRateBps)
}

func TestTiePayoutRollback(t *testing.T) {
	e := newTestEnv(t)
	defer e.close()
	addr := addrOf(privCreator)
	house := addrOf(privOther)
	feePer := 5 * types.DefaultCoinPrecision
	refund := 95 * types.DefaultCoinPrecision

	//冻结额故意小于 feePer+refund，抽水成功后退款一定失败
	frozen := feePer + refund/2
	_, err := e.accCoin.ExecFrozen(addr, e.execAddr, frozen)
	require.NoError(t, err)
	houseBefore := e.execBalance(house).GetBalance()

	action := &Action{
		coinsAccount: e.accCoin,
		db:           e.stateDB,
		execaddr:     e.execAddr,
	}
	_, _, err = action.tiePayout(addr, house, feePer, refund)
	require.Error(t, err)

	//失败后抽水那一步也被撤销，账目回到调用前
	require.Equal(t, frozen, e.execBalance(addr).GetFrozen())
	require.Equal(t, houseBefore, e.execBalance(house).GetBalance())
}

func TestSatAdd(t *testing.T) {
	require.Equal(t, int64(3), satAdd(1, 2))
	require.Equal(t, int64(math.MaxInt64), satAdd(math.MaxInt64, 1))
	require.Equal(t, int64(math.MaxInt64-1), satAdd(math.MaxInt64-1, 0))
}

func setManageConf(t *testing.T, stateDB dbm.DB, key, value string) {
	item := &types.ConfigItem{
		Key: key,
		Value: &types.ConfigItem_Arr{
			Arr: &types.ArrayConfig{Value: []string{value}},
		},
	}
	stateDB.Set([]byte(types.ManageKey(key)), types.Encode(item))
}
