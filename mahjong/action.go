package mahjong

const (
	OperateNone    = -1
	OperatePass    = 0
	OperateChow    = 1 << iota // 吃
	OperatePon                 // 碰
	OperateKon                 // 杠
	OperateRiichi              // 立直
	OperateRon                 // 荣和
	OperateTsumo               // 自摸
	OperateDiscard             // 出牌
	OperateDraw                // 摸牌
)

var OperateNames = map[int]string{
	OperatePass:    "pass",
	OperateChow:    "chii",
	OperatePon:     "pon",
	OperateKon:     "kan",
	OperateRiichi:  "riichi",
	OperateRon:     "ron",
	OperateTsumo:   "tsumo",
	OperateDiscard: "discard",
	OperateDraw:    "draw",
}

var OperateIDs = map[string]int{
	"pass":    OperatePass,
	"chii":    OperateChow,
	"pon":     OperatePon,
	"kan":     OperateKon,
	"riichi":  OperateRiichi,
	"ron":     OperateRon,
	"tsumo":   OperateTsumo,
	"discard": OperateDiscard,
	"draw":    OperateDraw,
}

type Operates struct {
	Value int32
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Reset() {
	o.Value = 0
}

func GetOperateName(operate int) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}

func GetOperateID(name string) int {
	if id, ok := OperateIDs[name]; ok {
		return id
	}
	return OperateNone
}

// Action 玩家操作，封闭联合类型：Execute内穷尽匹配
type Action interface {
	Op() int
	isAction()
}

type DiscardAction struct{ Tile Tile }

type RiichiAction struct{ Tile Tile }

type TsumoAction struct{}

type RonAction struct{}

type PonAction struct{}

// ChiiAction 吃牌，Tiles为手中参与顺子的两张
type ChiiAction struct{ Tiles [2]Tile }

// KonAction 杠。有弃牌时为大明杠(忽略Tile)；
// 自己回合按Tile判定暗杠或加杠
type KonAction struct{ Tile Tile }

type PassAction struct{}

func (DiscardAction) Op() int { return OperateDiscard }
func (RiichiAction) Op() int  { return OperateRiichi }
func (TsumoAction) Op() int   { return OperateTsumo }
func (RonAction) Op() int     { return OperateRon }
func (PonAction) Op() int     { return OperatePon }
func (ChiiAction) Op() int    { return OperateChow }
func (KonAction) Op() int     { return OperateKon }
func (PassAction) Op() int    { return OperatePass }

func (DiscardAction) isAction() {}
func (RiichiAction) isAction()  {}
func (TsumoAction) isAction()   {}
func (RonAction) isAction()     {}
func (PonAction) isAction()     {}
func (ChiiAction) isAction()    {}
func (KonAction) isAction()     {}
func (PassAction) isAction()    {}
