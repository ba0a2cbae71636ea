package types

//coinflip action ty
const (
	CoinflipActionCreate = iota + 1
	CoinflipActionJoin
	CoinflipActionCommit
	CoinflipActionReveal
	CoinflipActionTimeout
)

//状态机：等待对手 -> 等待承诺 -> 等待揭示 -> 开奖 -> 结束
//Cancelled 是超时回收后的终态
const (
	CoinflipStatusAwaitingJoiner = iota + 1
	CoinflipStatusAwaitingCommitments
	CoinflipStatusAwaitingReveal
	CoinflipStatusResolving
	CoinflipStatusCompleted
	CoinflipStatusCancelled
)

//硬币面，揭示前记 Unknown
const (
	CoinSideUnknown = int32(0)
	CoinSideHeads   = int32(1)
	CoinSideTails   = int32(2)
)

//开奖结果
const (
	IsTie        = int32(1)
	IsCreatorWin = int32(2)
	IsJoinerWin  = int32(3)
)

//log ty
const (
	TyLogCoinflipCreate  = 741
	TyLogCoinflipJoin    = 742
	TyLogCoinflipCommit  = 743
	TyLogCoinflipReveal  = 744
	TyLogCoinflipSettle  = 745
	TyLogCoinflipTimeout = 746
)

//query func name
const (
	FuncNameQueryRoomByID         = "QueryRoomById"
	FuncNameQueryRoomListByIds    = "QueryRoomListByIds"
	FuncNameQueryRoomListByStatus = "QueryRoomListByStatus"
	FuncNameQueryRoomListByAddr   = "QueryRoomListByStatusAddr"
	FuncNameQueryRoomCount        = "QueryRoomCount"
	FuncNameQueryTotals           = "QueryTotals"
	FuncNameQueryConfig           = "QueryConfig"
)

//通过 manage 合约可调的配置项
const (
	ConfNameMinStake      = CoinflipX + "-" + "minStake"
	ConfNameMaxStake      = CoinflipX + "-" + "maxStake"
	ConfNameFeeRateBps    = CoinflipX + "-" + "feeRateBps"
	ConfNameTieFeeBps     = CoinflipX + "-" + "tieFeeBps"
	ConfNameJoinTimeout   = CoinflipX + "-" + "joinTimeout"
	ConfNameCommitTimeout = CoinflipX + "-" + "commitTimeout"
	ConfNameRevealTimeout = CoinflipX + "-" + "revealTimeout"
	ConfNameHouseAddr     = CoinflipX + "-" + "houseAddr"
)

//默认配置，均可被 manage 覆盖
const (
	DefaultMinStake      = 1 * 1e8
	DefaultMaxStake      = 10000 * 1e8
	DefaultFeeRateBps    = 300
	DefaultTieFeeBps     = 0
	DefaultJoinTimeout   = 24 * 3600
	DefaultCommitTimeout = 3600
	DefaultRevealTimeout = 3600
	//房主费率上限，配置超过该值时按上限截断
	MaxFeeRateBps = 1000
	//一次 bps 换算的基数
	BpsDenominator = 10000
)

//list 查询方向和单页上限
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

const (
	//PackageName 插件包名
	PackageName = "chain33.coinflip"
	//CoinflipX 执行器名
	CoinflipX = "coinflip"
)

//ExecerCoinflip 执行器名字节串
var ExecerCoinflip = []byte(CoinflipX)
