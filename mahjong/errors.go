package mahjong

import "errors"

// 错误分级：除NewEngine外，所有违规都通过ActionResult返回，不中断对局
var (
	ErrInvalidAction = errors.New("invalid action")
	ErrIllegalTile   = errors.New("illegal tile")
	ErrRuleViolation = errors.New("rule violation")
	ErrNoYaku        = errors.New("no yaku")
	ErrEmptyWall     = errors.New("empty wall")

	ErrPlayerCount = errors.New("exactly 4 players required")
)

// ActionResult 一次操作的执行结果
type ActionResult struct {
	Success        bool
	Message        string
	Err            error
	GameEnded      bool
	Winner         int32 // SeatNull表示无和牌者
	Score          int32
	Yaku           []Yaku
	PendingChankan bool
	TenpaiSeats    []int32 // 流局时的听牌座位
}

func okResult(msg string) *ActionResult {
	return &ActionResult{Success: true, Message: msg, Winner: SeatNull}
}

func failResult(err error) *ActionResult {
	return &ActionResult{Success: false, Message: err.Error(), Err: err, Winner: SeatNull}
}
