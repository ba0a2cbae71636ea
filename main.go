package main

import (
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/util/cli"
	_ "github.com/allouf/flipCoinFull-sub002/plugin"
)

func main() {
	cli.RunChain33("", "")
}
