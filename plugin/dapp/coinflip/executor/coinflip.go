package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

var glog = log.New("module", "execs.coinflip")

var driverName = pty.CoinflipX

//Init register dapp
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	drivers.Register(cfg, GetName(), newCoinflip, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

//InitExecType 绑定执行器方法列表
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Coinflip{}))
}

//Coinflip 执行器结构体
type Coinflip struct {
	drivers.DriverBase
}

func newCoinflip() drivers.Driver {
	t := &Coinflip{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutorType(driverName))
	return t
}

//GetName get name
func GetName() string {
	return newCoinflip().GetName()
}

//GetDriverName 驱动名
func (c *Coinflip) GetDriverName() string {
	return driverName
}

// CheckReceiptExecOk return true to check if receipt ty is ok
func (c *Coinflip) CheckReceiptExecOk() bool {
	return true
}

func (c *Coinflip) getRoom(roomID string) (*pty.Coinflip, error) {
	value, err := c.GetStateDB().Get(calcCoinflipKey(roomID))
	if err != nil {
		return nil, err
	}
	var room pty.Coinflip
	err = types.Decode(value, &room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
