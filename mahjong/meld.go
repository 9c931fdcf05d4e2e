package mahjong

import "slices"

// Meld 副露或暗杠
type Meld struct {
	Type   EGroupType
	Tiles  []Tile
	Called Tile  // 所鸣的牌，暗杠为TileNull
	From   int32 // 来源座位，暗杠为自家
}

func NewMeld(typ EGroupType, tiles []Tile, called Tile, from int32) *Meld {
	sorted := slices.Clone(tiles)
	SortTiles(sorted)
	return &Meld{Type: typ, Tiles: sorted, Called: called, From: from}
}

// Kind 代表牌：刻杠为其牌种，顺子为最小牌
func (m *Meld) Kind() Tile {
	return m.Tiles[0].Kind()
}

func (m *Meld) Kind34() int {
	return m.Kind().Kind34()
}

func (m *Meld) IsKon() bool {
	switch m.Type {
	case GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		return true
	}
	return false
}

// KonType 杠的细分类型，非杠返回KonTypeNone
func (m *Meld) KonType() KonType {
	switch m.Type {
	case GroupTypeZhiKon:
		return KonTypeZhi
	case GroupTypeAnKon:
		return KonTypeAn
	case GroupTypeBuKon:
		return KonTypeBu
	}
	return KonTypeNone
}

// IsTriplet 碰或杠
func (m *Meld) IsTriplet() bool {
	return m.Type != GroupTypeChow && m.Type != GroupTypeNone
}

// IsOpen 暗杠不破门清
func (m *Meld) IsOpen() bool {
	return m.Type != GroupTypeAnKon
}

func (m *Meld) TypeName() string {
	return GroupTypeNames[m.Type]
}

// UpgradeToKon 碰升级为加杠
func (m *Meld) UpgradeToKon(tile Tile) {
	m.Type = GroupTypeBuKon
	m.Tiles = append(m.Tiles, tile)
	SortTiles(m.Tiles)
}
