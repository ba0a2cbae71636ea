package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

//Jrpc json rpc struct
type Jrpc struct {
	cli *channelClient
}

//Init init rpc
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	cli.Init(name, s, &Jrpc{cli: cli}, nil)
}
