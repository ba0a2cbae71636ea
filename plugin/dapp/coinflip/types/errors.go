package types

import "errors"

var (
	//ErrRoomNotExist 房间不存在
	ErrRoomNotExist = errors.New("coinflip room not exist")
	//ErrStakeOutOfRange 押注不在 [minStake, maxStake] 区间
	ErrStakeOutOfRange = errors.New("stake out of configured range")
	//ErrRoomStatus 当前状态不允许该操作
	ErrRoomStatus = errors.New("operation not allowed in current room status")
	//ErrJoinSelfRoom 不允许加入自己创建的房间
	ErrJoinSelfRoom = errors.New("can not join the room created by yourself")
	//ErrNotRoomPlayer 非本局玩家
	ErrNotRoomPlayer = errors.New("address is not a player of this room")
	//ErrDupCommit 已提交过承诺
	ErrDupCommit = errors.New("commitment already submitted")
	//ErrDupReveal 已揭示过
	ErrDupReveal = errors.New("already revealed")
	//ErrInvalidCommitment 承诺格式非法
	ErrInvalidCommitment = errors.New("invalid commitment bytes")
	//ErrCommitMismatch 揭示值和承诺不匹配
	ErrCommitMismatch = errors.New("reveal does not match commitment")
	//ErrWeakSecret 弱随机数被拒绝
	ErrWeakSecret = errors.New("secret value is too weak")
	//ErrInvalidSide 非法的硬币面
	ErrInvalidSide = errors.New("invalid coin side")
	//ErrDeadlineNotReached 截止时间未到，不能超时回收
	ErrDeadlineNotReached = errors.New("deadline not reached yet")
	//ErrDeadlinePassed 已过截止时间，只能走超时回收
	ErrDeadlinePassed = errors.New("deadline passed, only timeout reclaim allowed")
	//ErrRoomFinished 房间已是终态
	ErrRoomFinished = errors.New("room already completed or cancelled")
)
