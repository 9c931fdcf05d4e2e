package mahjong

// EColor 牌的花色
type EColor int

const (
	ColorUndefined EColor = -1
	ColorManzu     EColor = iota - 1 // 万子
	ColorPinzu                       // 筒子
	ColorSouzu                       // 索子
	ColorWind                        // 风牌
	ColorDragon                      // 三元牌
	ColorEnd
	ColorBegin = ColorManzu
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var Kind34BeginByColor = [ColorEnd]int{0, 9, 18, 27, 31}

const (
	SeatNull int32 = -1
	NP4            = 4
)

const (
	KindCount           = 34  // 牌的种类数
	TotalTileCount      = 136 // 全部牌数
	DeadWallTileCount   = 14  // 王牌区牌数
	TileCountInitBanker = 14
	TileCountInitNormal = 13
	MaxKonCount         = 4 // 一局最多杠数(岭上牌数)
)

// KonType 杠的类型
type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi          // 大明杠
	KonTypeAn           // 暗杠
	KonTypeBu           // 加杠
)

// EGroupType 牌组类型
type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow
	GroupTypePon
	GroupTypeZhiKon
	GroupTypeAnKon
	GroupTypeBuKon
)

var GroupTypeNames = map[EGroupType]string{
	GroupTypeChow:   "chii",
	GroupTypePon:    "pon",
	GroupTypeZhiKon: "open_kan",
	GroupTypeAnKon:  "closed_kan",
	GroupTypeBuKon:  "added_kan",
}

// EPhase 对局阶段
type EPhase int

const (
	PhaseDealing EPhase = iota
	PhasePlaying
	PhaseEnded
)

var phaseNames = [...]string{"dealing", "playing", "ended"}

func (p EPhase) String() string {
	if p < PhaseDealing || p > PhaseEnded {
		return "unknown"
	}
	return phaseNames[p]
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

func IsSuitColor(color EColor) bool {
	return color >= ColorManzu && color <= ColorSouzu
}

func IsHonorColor(color EColor) bool {
	return color == ColorWind || color == ColorDragon
}
