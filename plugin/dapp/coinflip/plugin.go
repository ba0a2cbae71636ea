package coinflip

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/commands"
	"github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/executor"
	"github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/rpc"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     pty.CoinflipX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.CoinflipCmd,
		RPC:      rpc.Init,
	})
}
