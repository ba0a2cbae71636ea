package executor

import (
	"fmt"

	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//状态数据库的房间主键
func calcCoinflipKey(roomID string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-%s", pty.CoinflipX, roomID))
}

//状态数据库的全局累计量，单键，只在终局交易内更新
func calcCoinflipTotalsKey() []byte {
	return []byte(fmt.Sprintf("mavl-%s-totals", pty.CoinflipX))
}

func calcRoomAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:", pty.CoinflipX, addr))
}

func calcRoomAddrKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:%018d", pty.CoinflipX, addr, index))
}

func calcRoomStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:", pty.CoinflipX, status))
}

func calcRoomStatusKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:%018d", pty.CoinflipX, status, index))
}

func calcRoomStatusAddrPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status-addr:%d:%s:", pty.CoinflipX, status, addr))
}

func calcRoomStatusAddrKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status-addr:%d:%s:%018d", pty.CoinflipX, status, addr, index))
}

//按状态以及状态加地址两个维度的房间计数
func calcRoomStatusCountKey(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-count:%d", pty.CoinflipX, status))
}

func calcRoomStatusAddrCountKey(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-count-addr:%d:%s", pty.CoinflipX, status, addr))
}
