package mahjong

import "slices"

// Hand 一名玩家的手牌状态：门前牌、副露、牌河与立直/振听状态
type Hand struct {
	tiles    []Tile // 门前手牌，保持有序
	melds    []*Meld
	discards []Tile
	seatWind Tile

	riichi          bool
	riichiTurn      int32 // 立直宣言巡目，-1为未立直
	doubleRiichi    bool  // 第一打且无任何鸣牌时宣言
	riichiDiscarded bool  // 立直宣言牌是否已打出
	ippatsu         bool
	furiten         bool
	tempFuriten     bool
	lastDraw        Tile
}

func NewHand(seatWind Tile) *Hand {
	return &Hand{
		tiles:      make([]Tile, 0, TileCountInitBanker),
		melds:      make([]*Meld, 0),
		discards:   make([]Tile, 0),
		seatWind:   seatWind,
		riichiTurn: -1,
		lastDraw:   TileNull,
	}
}

// PutTile 摸牌入手，临时振听随之解除
func (h *Hand) PutTile(tile Tile) {
	h.tiles = append(h.tiles, tile)
	SortTiles(h.tiles)
	h.lastDraw = tile
	h.tempFuriten = false
}

func (h *Hand) PutTiles(tiles []Tile) {
	h.tiles = append(h.tiles, tiles...)
	SortTiles(h.tiles)
}

// TakeTile 按牌种取走一张，优先完全一致的牌
func (h *Hand) TakeTile(tile Tile) (Tile, bool) {
	if i := slices.Index(h.tiles, tile); i >= 0 {
		return h.removeAt(i), true
	}
	for i, t := range h.tiles {
		if t.Kind() == tile.Kind() {
			return h.removeAt(i), true
		}
	}
	return TileNull, false
}

func (h *Hand) removeAt(i int) Tile {
	tile := h.tiles[i]
	h.tiles = slices.Delete(h.tiles, i, i+1)
	return tile
}

// Discard 打出一张牌入牌河
func (h *Hand) Discard(tile Tile) (Tile, bool) {
	removed, ok := h.TakeTile(tile)
	if !ok {
		return TileNull, false
	}
	h.discards = append(h.discards, removed)
	if h.riichi {
		// 一发仅存续到立直宣言后自家的下一次打牌
		if h.riichiDiscarded {
			h.ippatsu = false
		} else {
			h.riichiDiscarded = true
		}
	}
	h.lastDraw = TileNull
	return removed, true
}

func (h *Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

func (h *Hand) Melds() []*Meld {
	return h.melds
}

func (h *Hand) Discards() []Tile {
	return slices.Clone(h.discards)
}

func (h *Hand) SeatWind() Tile {
	return h.seatWind
}

func (h *Hand) SetSeatWind(wind Tile) {
	h.seatWind = wind
}

func (h *Hand) LastDraw() Tile {
	return h.lastDraw
}

func (h *Hand) TileCount() int {
	return len(h.tiles)
}

func (h *Hand) CountKind(tile Tile) int {
	return CountKind(h.tiles, tile)
}

func (h *Hand) Counts() TileCounts {
	return NewTileCounts(h.tiles)
}

// IsClosed 门前清：无副露或仅有暗杠
func (h *Hand) IsClosed() bool {
	for _, m := range h.melds {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

func (h *Hand) IsRiichi() bool {
	return h.riichi
}

func (h *Hand) RiichiTurn() int32 {
	return h.riichiTurn
}

func (h *Hand) IsDoubleRiichi() bool {
	return h.riichi && h.doubleRiichi
}

func (h *Hand) Ippatsu() bool {
	return h.ippatsu
}

func (h *Hand) ClearIppatsu() {
	h.ippatsu = false
}

func (h *Hand) IsFuriten() bool {
	return h.furiten
}

func (h *Hand) IsTempFuriten() bool {
	return h.tempFuriten
}

func (h *Hand) SetTempFuriten() {
	h.tempFuriten = true
}

// DeclareRiichi 立直宣言，宣言成立后开启一发窗口；
// double表示第一打且场上无任何鸣牌（两立直条件）
func (h *Hand) DeclareRiichi(turn int32, double bool) {
	h.riichi = true
	h.riichiTurn = turn
	h.doubleRiichi = double
	h.ippatsu = true
	h.riichiDiscarded = false
}

// WinningTiles 当前13张形态的全部和牌
func (h *Hand) WinningTiles() []Tile {
	kinds := huCore.WinningKinds(h.Counts(), len(h.melds))
	tiles := make([]Tile, len(kinds))
	for i, k := range kinds {
		tiles[i] = TileFromKind34(k)
	}
	return tiles
}

func (h *Hand) IsTenpai() bool {
	return len(h.WinningTiles()) > 0
}

// CompleteWith 加上一张牌是否构成和牌形
func (h *Hand) CompleteWith(tile Tile) bool {
	counts := h.Counts()
	idx := tile.Kind34()
	if idx < 0 || counts[idx] >= 4 {
		return false
	}
	counts[idx]++
	return huCore.IsComplete(counts, len(h.melds))
}

// UpdateFuriten 永久振听：牌河中含有任一自家和牌
func (h *Hand) UpdateFuriten() {
	h.furiten = false
	for _, w := range h.WinningTiles() {
		for _, d := range h.discards {
			if d.Kind() == w.Kind() {
				h.furiten = true
				return
			}
		}
	}
}

// CanRon 荣和检查：听这张牌且无振听。振听只看自家牌河
func (h *Hand) CanRon(tile Tile) bool {
	if h.furiten || h.tempFuriten {
		return false
	}
	return h.CompleteWith(tile)
}

func (h *Hand) CanPon(tile Tile) bool {
	return h.CountKind(tile) >= 2
}

func (h *Hand) CanZhiKon(tile Tile) bool {
	return h.CountKind(tile) >= 3
}

// ChowOptions 可与该牌组成顺子的手牌搭子
func (h *Hand) ChowOptions(tile Tile) [][2]Tile {
	if !tile.IsSuit() {
		return nil
	}
	c, p := tile.Kind().Info()
	var options [][2]Tile
	for _, offsets := range [][2]int{{-2, -1}, {-1, 1}, {1, 2}} {
		p1, p2 := p+offsets[0], p+offsets[1]
		if p1 < 0 || p2 < 0 || p1 > 8 || p2 > 8 {
			continue
		}
		t1, ok1 := h.findKind(MakeTile(c, p1))
		t2, ok2 := h.findKind(MakeTile(c, p2))
		if ok1 && ok2 {
			options = append(options, [2]Tile{t1, t2})
		}
	}
	return options
}

func (h *Hand) findKind(kind Tile) (Tile, bool) {
	for _, t := range h.tiles {
		if t.Kind() == kind {
			return t, true
		}
	}
	return TileNull, false
}

// Chow 吃：用手中搭子与弃牌组成顺子
func (h *Hand) Chow(tile Tile, pair [2]Tile, from int32) bool {
	t1, ok1 := h.TakeTile(pair[0])
	if !ok1 {
		return false
	}
	t2, ok2 := h.TakeTile(pair[1])
	if !ok2 {
		h.PutTiles([]Tile{t1})
		return false
	}
	h.melds = append(h.melds, NewMeld(GroupTypeChow, []Tile{t1, t2, tile}, tile, from))
	return true
}

// Pon 碰
func (h *Hand) Pon(tile Tile, from int32) bool {
	if !h.CanPon(tile) {
		return false
	}
	t1, _ := h.TakeTile(tile)
	t2, _ := h.TakeTile(tile)
	h.melds = append(h.melds, NewMeld(GroupTypePon, []Tile{t1, t2, tile}, tile, from))
	return true
}

// ZhiKon 大明杠
func (h *Hand) ZhiKon(tile Tile, from int32) bool {
	if !h.CanZhiKon(tile) {
		return false
	}
	t1, _ := h.TakeTile(tile)
	t2, _ := h.TakeTile(tile)
	t3, _ := h.TakeTile(tile)
	h.melds = append(h.melds, NewMeld(GroupTypeZhiKon, []Tile{t1, t2, t3, tile}, tile, from))
	return true
}

// AnKon 暗杠
func (h *Hand) AnKon(tile Tile, seat int32) bool {
	if h.CountKind(tile) < 4 {
		return false
	}
	tiles := make([]Tile, 4)
	for i := range tiles {
		tiles[i], _ = h.TakeTile(tile)
	}
	h.melds = append(h.melds, NewMeld(GroupTypeAnKon, tiles, TileNull, seat))
	return true
}

// PonMeld 找到指定牌种的碰副露
func (h *Hand) PonMeld(tile Tile) *Meld {
	for _, m := range h.melds {
		if m.Type == GroupTypePon && m.Kind() == tile.Kind() {
			return m
		}
	}
	return nil
}

// ClosedKonTiles 可暗杠的牌
func (h *Hand) ClosedKonTiles() []Tile {
	counts := h.Counts()
	var tiles []Tile
	for k, n := range counts {
		if n == 4 {
			tiles = append(tiles, TileFromKind34(k))
		}
	}
	return tiles
}

// UpgradeKonTiles 可加杠的牌：碰副露且第4张在手
func (h *Hand) UpgradeKonTiles() []Tile {
	var tiles []Tile
	for _, m := range h.melds {
		if m.Type == GroupTypePon && h.CountKind(m.Kind()) >= 1 {
			tiles = append(tiles, m.Kind())
		}
	}
	return tiles
}

// RiichiKonAllowed 立直后暗杠须不改变听牌
func (h *Hand) RiichiKonAllowed(tile Tile) bool {
	if h.CountKind(tile) < 4 || !h.lastDraw.IsValid() {
		return false
	}
	before := h.Counts()
	before[h.lastDraw.Kind34()]--
	waitsBefore := huCore.WinningKinds(before, len(h.melds))

	after := h.Counts()
	after[tile.Kind34()] -= 4
	waitsAfter := huCore.WinningKinds(after, len(h.melds)+1)
	return slices.Equal(waitsBefore, waitsAfter)
}
