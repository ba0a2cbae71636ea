package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/allouf/flipCoinFull-sub002/plugin/dapp/coinflip/types"
)

//未终局的房间不对外暴露已揭示的随机数
func redactRoom(room *pty.Coinflip) *pty.Coinflip {
	if isTerminal(room.Status) {
		return room
	}
	room.CreateSecret = 0
	room.JoinSecret = 0
	return room
}

//Query_QueryRoomById 按房间 id 查询
func (c *Coinflip) Query_QueryRoomById(in *pty.ReqCoinflipInfo) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	room, err := c.getRoom(in.GetRoomId())
	if err != nil {
		if err == types.ErrNotFound {
			return nil, pty.ErrRoomNotExist
		}
		return nil, err
	}
	return &pty.ReplyCoinflipInfo{Room: redactRoom(room)}, nil
}

//Query_QueryRoomListByIds 按一组房间 id 查询
func (c *Coinflip) Query_QueryRoomListByIds(in *pty.ReqCoinflipInfos) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	var rooms []*pty.Coinflip
	for _, id := range in.GetRoomIds() {
		room, err := c.getRoom(id)
		if err != nil {
			if err == types.ErrNotFound {
				return nil, pty.ErrRoomNotExist
			}
			return nil, err
		}
		rooms = append(rooms, redactRoom(room))
	}
	return &pty.ReplyCoinflipList{Rooms: rooms}, nil
}

//Query_QueryRoomListByStatus 按状态翻页查询
func (c *Coinflip) Query_QueryRoomListByStatus(in *pty.ReqCoinflipListByStatus) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	var primaryKey []byte
	if in.GetIndex() > 0 {
		primaryKey = calcRoomStatusKey(in.GetStatus(), in.GetIndex())
	}
	return c.listRooms(calcRoomStatusPrefix(in.GetStatus()), primaryKey, in.GetCount(), in.GetDirection())
}

//Query_QueryRoomListByStatusAddr 按状态加地址翻页查询
func (c *Coinflip) Query_QueryRoomListByStatusAddr(in *pty.ReqCoinflipListByStatus) (types.Message, error) {
	if in == nil || in.GetAddress() == "" {
		return nil, types.ErrInvalidParam
	}
	var primaryKey []byte
	if in.GetIndex() > 0 {
		primaryKey = calcRoomStatusAddrKey(in.GetStatus(), in.GetAddress(), in.GetIndex())
	}
	return c.listRooms(calcRoomStatusAddrPrefix(in.GetStatus(), in.GetAddress()), primaryKey, in.GetCount(), in.GetDirection())
}

//Query_QueryRoomCount 按状态或状态加地址统计数量
func (c *Coinflip) Query_QueryRoomCount(in *pty.ReqCoinflipCount) (types.Message, error) {
	if in == nil {
		return nil, types.ErrInvalidParam
	}
	var key []byte
	if in.GetAddress() != "" {
		key = calcRoomStatusAddrCountKey(in.GetStatus(), in.GetAddress())
	} else {
		key = calcRoomStatusCountKey(in.GetStatus())
	}
	return &pty.ReplyCoinflipCount{Count: c.readCount(key)}, nil
}

//Query_QueryTotals 全局累计量
func (c *Coinflip) Query_QueryTotals(in *types.ReqNil) (types.Message, error) {
	var totals pty.CoinflipTotals
	data, err := c.GetStateDB().Get(calcCoinflipTotalsKey())
	if err != nil {
		if err == types.ErrNotFound {
			return &totals, nil
		}
		return nil, err
	}
	err = types.Decode(data, &totals)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

//Query_QueryConfig 默认值与 manage 配置合并后的当前生效策略
func (c *Coinflip) Query_QueryConfig(in *types.ReqNil) (types.Message, error) {
	db := c.GetStateDB()
	feeBps := getConfValue(db, pty.ConfNameFeeRateBps, pty.DefaultFeeRateBps)
	if feeBps > pty.MaxFeeRateBps {
		feeBps = pty.MaxFeeRateBps
	}
	return &pty.ReplyCoinflipConfig{
		MinStake:      getConfValue(db, pty.ConfNameMinStake, pty.DefaultMinStake),
		MaxStake:      getConfValue(db, pty.ConfNameMaxStake, pty.DefaultMaxStake),
		FeeRateBps:    feeBps,
		TieFeeBps:     getConfValue(db, pty.ConfNameTieFeeBps, pty.DefaultTieFeeBps),
		JoinTimeout:   getConfValue(db, pty.ConfNameJoinTimeout, pty.DefaultJoinTimeout),
		CommitTimeout: getConfValue(db, pty.ConfNameCommitTimeout, pty.DefaultCommitTimeout),
		RevealTimeout: getConfValue(db, pty.ConfNameRevealTimeout, pty.DefaultRevealTimeout),
		HouseAddr:     getConfStringValue(db, pty.ConfNameHouseAddr, ""),
	}, nil
}

func (c *Coinflip) listRooms(prefix, primaryKey []byte, count, direction int32) (types.Message, error) {
	if count <= 0 {
		count = pty.DefaultCount
	}
	if count > pty.MaxCount {
		count = pty.MaxCount
	}
	values, err := c.GetLocalDB().List(prefix, primaryKey, count, direction)
	if err != nil {
		return nil, err
	}
	var rooms []*pty.Coinflip
	for _, value := range values {
		var record pty.CoinflipRecord
		err := types.Decode(value, &record)
		if err != nil {
			glog.Error("listRooms", "decode record err", err)
			continue
		}
		room, err := c.getRoom(record.RoomId)
		if err != nil {
			glog.Error("listRooms", "roomId", record.RoomId, "err", err)
			continue
		}
		rooms = append(rooms, redactRoom(room))
	}
	return &pty.ReplyCoinflipList{Rooms: rooms}, nil
}
