package types

import (
	"reflect"

	log "github.com/33cn/chain33/common/log/log15"
	"github.com/33cn/chain33/types"
)

var tlog = log.New("module", CoinflipX)

func init() {
	// init executor type
	types.AllowUserExec = append(types.AllowUserExec, ExecerCoinflip)
	types.RegFork(CoinflipX, InitFork)
	types.RegExec(CoinflipX, InitExecutor)
}

//InitFork 注册插件使能高度
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(CoinflipX, "Enable", 0)
}

//InitExecutor 注册执行器类型
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(CoinflipX, NewType(cfg))
}

//CoinflipType exec
type CoinflipType struct {
	types.ExecTypeBase
}

//NewType 创建执行器类型
func NewType(cfg *types.Chain33Config) *CoinflipType {
	c := &CoinflipType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

//GetPayload 返回交易 payload 结构体
func (t *CoinflipType) GetPayload() types.Message {
	return &CoinflipAction{}
}

//GetTypeMap 动作名与动作 id 的映射
func (t *CoinflipType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Create":  CoinflipActionCreate,
		"Join":    CoinflipActionJoin,
		"Commit":  CoinflipActionCommit,
		"Reveal":  CoinflipActionReveal,
		"Timeout": CoinflipActionTimeout,
	}
}

//GetLogMap 收据日志解码映射
func (t *CoinflipType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogCoinflipCreate:  {Ty: reflect.TypeOf(ReceiptCoinflip{}), Name: "TyLogCoinflipCreate"},
		TyLogCoinflipJoin:    {Ty: reflect.TypeOf(ReceiptCoinflip{}), Name: "TyLogCoinflipJoin"},
		TyLogCoinflipCommit:  {Ty: reflect.TypeOf(ReceiptCoinflip{}), Name: "TyLogCoinflipCommit"},
		TyLogCoinflipReveal:  {Ty: reflect.TypeOf(ReceiptCoinflip{}), Name: "TyLogCoinflipReveal"},
		TyLogCoinflipSettle:  {Ty: reflect.TypeOf(ReceiptCoinflip{}), Name: "TyLogCoinflipSettle"},
		TyLogCoinflipTimeout: {Ty: reflect.TypeOf(ReceiptCoinflip{}), Name: "TyLogCoinflipTimeout"},
	}
}

//GetName 执行器名
func (t *CoinflipType) GetName() string {
	return CoinflipX
}
