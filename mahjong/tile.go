package mahjong

import (
	"slices"
	"strconv"
	"strings"
)

// 牌的flag位
const (
	FlagNormal = 1 // 普通牌
	FlagRed    = 2 // 赤宝牌
)

type Tile int32

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)    // 无效牌
	TileEast  Tile = MakeTile(ColorWind, 0)   // 东
	TileSouth Tile = MakeTile(ColorWind, 1)   // 南
	TileWest  Tile = MakeTile(ColorWind, 2)   // 西
	TileNorth Tile = MakeTile(ColorWind, 3)   // 北
	TileHatsu Tile = MakeTile(ColorDragon, 0) // 发
	TileChun  Tile = MakeTile(ColorDragon, 1) // 中
	TileHaku  Tile = MakeTile(ColorDragon, 2) // 白
)

// WindTiles 按座位偏移的自风顺序
var WindTiles = [NP4]Tile{TileEast, TileSouth, TileWest, TileNorth}

var (
	suitNames   = [...]string{"man", "pin", "sou"}
	windNames   = [...]string{"east", "south", "west", "north"}
	dragonNames = [...]string{"green", "red", "white"}
)

// 静态表：字牌名 -> 牌
var honorNameToTile = map[string]Tile{
	"east":  TileEast,
	"south": TileSouth,
	"west":  TileWest,
	"north": TileNorth,
	"green": TileHatsu,
	"red":   TileChun,
	"white": TileHaku,
}

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color) << 8) | (point << 4) | FlagNormal)
}

func MakeSpecialTile(color EColor, point int, flag int) Tile {
	return Tile((int(color) << 8) | (point << 4) | flag)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsRed() bool {
	return t.Flag() == FlagRed
}

// Kind 同种牌的规范值，赤牌与普通牌同种
func (t Tile) Kind() Tile {
	if !t.IsValid() {
		return t
	}
	return MakeTile(t.Color(), t.Point())
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && IsSuitColor(t.Color())
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && IsHonorColor(t.Color())
}

func (t Tile) IsWind() bool {
	return t.IsValid() && t.Color() == ColorWind
}

func (t Tile) IsDragon() bool {
	return t.IsValid() && t.Color() == ColorDragon
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsOrphan() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool { // 中张牌
	return t.IsSuit() && !t.IsTerminal()
}

// IsGreen 绿一色成分：索子23468与发
func (t Tile) IsGreen() bool {
	if t.Kind() == TileHatsu {
		return true
	}
	if t.Color() != ColorSouzu {
		return false
	}
	switch t.Point() {
	case 1, 2, 3, 5, 7:
		return true
	}
	return false
}

// Kind34 34种牌的线性索引，无效牌返回-1
func (t Tile) Kind34() int {
	if !t.IsValid() {
		return -1
	}
	return Kind34BeginByColor[t.Color()] + t.Point()
}

func TileFromKind34(idx int) Tile {
	for c := ColorBegin; c < ColorEnd; c++ {
		if idx < Kind34BeginByColor[c]+PointCountByColor[c] {
			return MakeTile(c, idx-Kind34BeginByColor[c])
		}
	}
	return TileNull
}

// NextForDora 宝牌指示牌所指的宝牌：9循环回1，北回东，白回发
func (t Tile) NextForDora() Tile {
	if !t.IsValid() {
		return TileNull
	}
	c, p := t.Info()
	return MakeTile(c, (p+1)%PointCountByColor[c])
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorManzu, ColorPinzu, ColorSouzu:
		name := strconv.Itoa(p + 1)
		if t.IsRed() {
			name += "r"
		}
		return name + suitNames[c]
	case ColorWind:
		return windNames[p]
	case ColorDragon:
		return dragonNames[p]
	default:
		return ""
	}
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

// ParseTile Name的逆变换，无法解析返回TileNull
func ParseTile(name string) Tile {
	if name == "" {
		return TileNull
	}
	if t, ok := honorNameToTile[name]; ok {
		return t
	}
	for c, suit := range suitNames {
		if !strings.HasSuffix(name, suit) {
			continue
		}
		body := strings.TrimSuffix(name, suit)
		red := strings.HasSuffix(body, "r")
		body = strings.TrimSuffix(body, "r")
		num, err := strconv.Atoi(body)
		if err != nil || num < 1 || num > 9 {
			return TileNull
		}
		if red {
			if num != 5 {
				return TileNull
			}
			return MakeSpecialTile(EColor(c), num-1, FlagRed)
		}
		return MakeTile(EColor(c), num-1)
	}
	return TileNull
}

// ParseTiles 解析逗号分隔的牌名列表
func ParseTiles(names string) []Tile {
	parts := strings.Split(names, ",")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		res[i] = ParseTile(strings.TrimSpace(name))
	}
	return res
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

func TileNames(tiles []Tile) []string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Name()
	}
	return names
}

func SortTiles(tiles []Tile) {
	slices.Sort(tiles)
}

func CountKind(tiles []Tile, kind Tile) int {
	count := 0
	for _, t := range tiles {
		if t.Kind() == kind.Kind() {
			count++
		}
	}
	return count
}

func makeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
