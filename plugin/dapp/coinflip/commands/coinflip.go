package commands

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
	"github.com/spf13/cobra"
)

//CoinflipCmd 猜硬币游戏命令行
func CoinflipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coinflip",
		Short: "Two party coin flip wager game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CoinflipCreateRawTxCmd(),
		CoinflipJoinRawTxCmd(),
		CoinflipCommitRawTxCmd(),
		CoinflipRevealRawTxCmd(),
		CoinflipTimeoutRawTxCmd(),
		CoinflipCommitHashCmd(),
		CoinflipShowCmd(),
		CoinflipListCmd(),
		CoinflipCountCmd(),
		CoinflipTotalsCmd(),
		CoinflipConfigCmd(),
		CoinflipSweepCmd(),
	)
	return cmd
}

func getRealExecName(paraName string) string {
	return paraName + pty.CoinflipX
}

//CoinflipCreateRawTxCmd 构造建房交易
func CoinflipCreateRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new coinflip room with a stake",
		Run:   coinflipCreate,
	}
	cmd.Flags().Float64P("amount", "a", 0, "stake amount per player")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func coinflipCreate(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	amount, _ := cmd.Flags().GetFloat64("amount")
	//支持4位小数输入，多余的输入将被截断
	amountInt64 := int64(amount*types.InputPrecision) * types.Multiple1E4
	payload := &pty.CoinflipCreate{
		Value: amountInt64,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName),
		ActionName: "Create",
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

//CoinflipJoinRawTxCmd 构造入场交易
func CoinflipJoinRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an open coinflip room",
		Run:   coinflipJoin,
	}
	cmd.Flags().StringP("roomId", "r", "", "room id")
	cmd.MarkFlagRequired("roomId")
	return cmd
}

func coinflipJoin(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	roomID, _ := cmd.Flags().GetString("roomId")
	payload := &pty.CoinflipJoin{
		RoomId: roomID,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName),
		ActionName: "Join",
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

//CoinflipCommitRawTxCmd 构造承诺交易
func CoinflipCommitRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Submit the hashed side+secret commitment",
		Run:   coinflipCommit,
	}
	cmd.Flags().StringP("roomId", "r", "", "room id")
	cmd.MarkFlagRequired("roomId")
	cmd.Flags().StringP("commitment", "c", "", "hex encoded commitment, see commit_hash")
	cmd.MarkFlagRequired("commitment")
	return cmd
}

func coinflipCommit(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	roomID, _ := cmd.Flags().GetString("roomId")
	commitment, _ := cmd.Flags().GetString("commitment")
	data, err := hex.DecodeString(commitment)
	if err != nil || len(data) != pty.CommitmentLen {
		fmt.Println("commitment must be a 32 byte hex string")
		return
	}
	payload := &pty.CoinflipCommit{
		RoomId:     roomID,
		Commitment: data,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName),
		ActionName: "Commit",
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

//CoinflipRevealRawTxCmd 构造揭示交易
func CoinflipRevealRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed side and secret",
		Run:   coinflipReveal,
	}
	cmd.Flags().StringP("roomId", "r", "", "room id")
	cmd.MarkFlagRequired("roomId")
	cmd.Flags().Int32P("side", "s", 0, "coin side, 1 heads 2 tails")
	cmd.MarkFlagRequired("side")
	cmd.Flags().Uint64P("secret", "k", 0, "secret used in the commitment")
	cmd.MarkFlagRequired("secret")
	return cmd
}

func coinflipReveal(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	roomID, _ := cmd.Flags().GetString("roomId")
	side, _ := cmd.Flags().GetInt32("side")
	secret, _ := cmd.Flags().GetUint64("secret")
	payload := &pty.CoinflipReveal{
		RoomId: roomID,
		Side:   side,
		Secret: secret,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName),
		ActionName: "Reveal",
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

//CoinflipTimeoutRawTxCmd 构造超时回收交易
func CoinflipTimeoutRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeout",
		Short: "Reclaim a room whose deadline has passed",
		Run:   coinflipTimeout,
	}
	cmd.Flags().StringP("roomId", "r", "", "room id")
	cmd.MarkFlagRequired("roomId")
	return cmd
}

func coinflipTimeout(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	roomID, _ := cmd.Flags().GetString("roomId")
	payload := &pty.CoinflipTimeout{
		RoomId: roomID,
	}
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName),
		ActionName: "Timeout",
		Payload:    types.MustPBToJSON(payload),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, nil)
	ctx.RunWithoutMarshal()
}

//CoinflipCommitHashCmd 本地计算承诺哈希，secret 不会离开本机
func CoinflipCommitHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit_hash",
		Short: "Compute the commitment hash for a side and secret locally",
		Run:   coinflipCommitHash,
	}
	cmd.Flags().Int32P("side", "s", 0, "coin side, 1 heads 2 tails")
	cmd.MarkFlagRequired("side")
	cmd.Flags().Uint64P("secret", "k", 0, "random secret, keep it until reveal")
	cmd.MarkFlagRequired("secret")
	return cmd
}

func coinflipCommitHash(cmd *cobra.Command, args []string) {
	side, _ := cmd.Flags().GetInt32("side")
	secret, _ := cmd.Flags().GetUint64("secret")
	if err := pty.CheckSide(side); err != nil {
		fmt.Println(err)
		return
	}
	if err := pty.CheckSecret(secret); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hex.EncodeToString(pty.CalcCommitment(side, secret)))
}

//CoinflipShowCmd 查询单个房间
func CoinflipShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a coinflip room by id",
		Run:   coinflipShow,
	}
	cmd.Flags().StringP("roomId", "r", "", "room id")
	cmd.MarkFlagRequired("roomId")
	return cmd
}

func coinflipShow(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	roomID, _ := cmd.Flags().GetString("roomId")
	req := &pty.ReqCoinflipInfo{
		RoomId: roomID,
	}
	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName),
		FuncName: pty.FuncNameQueryRoomByID,
		Payload:  types.MustPBToJSON(req),
	}
	var res pty.ReplyCoinflipInfo
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

//CoinflipListCmd 按状态翻页查询房间
func CoinflipListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coinflip rooms by status, optionally filtered by address",
		Run:   coinflipList,
	}
	cmd.Flags().Int32P("status", "s", 0, "room status (1:awaiting joiner 2:awaiting commitments 3:awaiting reveal 5:completed 6:cancelled)")
	cmd.MarkFlagRequired("status")
	cmd.Flags().StringP("address", "a", "", "player address filter")
	cmd.Flags().Int64P("index", "i", 0, "last index for pagination")
	cmd.Flags().Int32P("count", "c", pty.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", pty.ListDESC, "query direction, 0 desc 1 asc")
	return cmd
}

func coinflipList(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	status, _ := cmd.Flags().GetInt32("status")
	address, _ := cmd.Flags().GetString("address")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &pty.ReqCoinflipListByStatus{
		Status:    status,
		Address:   address,
		Index:     index,
		Count:     count,
		Direction: direction,
	}
	funcName := pty.FuncNameQueryRoomListByStatus
	if address != "" {
		funcName = pty.FuncNameQueryRoomListByAddr
	}
	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName),
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
	var res pty.ReplyCoinflipList
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

//CoinflipCountCmd 按状态统计房间数量
func CoinflipCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count coinflip rooms by status",
		Run:   coinflipCount,
	}
	cmd.Flags().Int32P("status", "s", 0, "room status")
	cmd.MarkFlagRequired("status")
	cmd.Flags().StringP("address", "a", "", "player address filter")
	return cmd
}

func coinflipCount(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	status, _ := cmd.Flags().GetInt32("status")
	address, _ := cmd.Flags().GetString("address")
	req := &pty.ReqCoinflipCount{
		Status:  status,
		Address: address,
	}
	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName),
		FuncName: pty.FuncNameQueryRoomCount,
		Payload:  types.MustPBToJSON(req),
	}
	var res pty.ReplyCoinflipCount
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

//CoinflipTotalsCmd 查询全局累计量
func CoinflipTotalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show accumulated round and volume totals",
		Run:   coinflipTotals,
	}
	return cmd
}

func coinflipTotals(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName),
		FuncName: pty.FuncNameQueryTotals,
		Payload:  types.MustPBToJSON(&types.ReqNil{}),
	}
	var res pty.CoinflipTotals
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

//CoinflipConfigCmd 查询当前生效的策略配置
func CoinflipConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective stake, fee and timeout configuration",
		Run:   coinflipConfig,
	}
	return cmd
}

func coinflipConfig(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName),
		FuncName: pty.FuncNameQueryConfig,
		Payload:  types.MustPBToJSON(&types.ReqNil{}),
	}
	var res pty.ReplyCoinflipConfig
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

//CoinflipSweepCmd 扫描已过截止时间的房间并生成对应的超时回收交易
func CoinflipSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Build timeout transactions for every expired room in a waiting status",
		Run:   coinflipSweep,
	}
	cmd.Flags().Int32P("status", "s", pty.CoinflipStatusAwaitingJoiner, "waiting status to sweep (1, 2 or 3)")
	return cmd
}

func coinflipSweep(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	status, _ := cmd.Flags().GetInt32("status")
	if status != pty.CoinflipStatusAwaitingJoiner &&
		status != pty.CoinflipStatusAwaitingCommitments &&
		status != pty.CoinflipStatusAwaitingReveal {
		fmt.Println("only waiting statuses can be swept")
		return
	}
	client, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		fmt.Println(err)
		return
	}

	req := &pty.ReqCoinflipListByStatus{
		Status: status,
		Count:  pty.MaxCount,
	}
	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName),
		FuncName: pty.FuncNameQueryRoomListByStatus,
		Payload:  types.MustPBToJSON(req),
	}
	var rooms pty.ReplyCoinflipList
	err = client.Call("Chain33.Query", params, &rooms)
	if err != nil {
		fmt.Println(err)
		return
	}

	now := time.Now().Unix()
	for _, room := range rooms.GetRooms() {
		var deadline int64
		switch room.GetStatus() {
		case pty.CoinflipStatusAwaitingJoiner:
			deadline = room.GetJoinDeadline()
		case pty.CoinflipStatusAwaitingCommitments:
			deadline = room.GetCommitDeadline()
		case pty.CoinflipStatusAwaitingReveal:
			deadline = room.GetRevealDeadline()
		}
		if deadline == 0 || now < deadline {
			continue
		}
		payload := &pty.CoinflipTimeout{
			RoomId: room.GetRoomId(),
		}
		txIn := &rpctypes.CreateTxIn{
			Execer:     getRealExecName(paraName),
			ActionName: "Timeout",
			Payload:    types.MustPBToJSON(payload),
		}
		var txHex string
		err = client.Call("Chain33.CreateTransaction", txIn, &txHex)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s %s\n", room.GetRoomId(), txHex)
	}
}
