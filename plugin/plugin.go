package plugin

import (
	_ "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip" //auto gen
)
