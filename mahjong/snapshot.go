package mahjong

import "slices"

// GameSnapshot 对局公开信息投影，不含任何手牌
type GameSnapshot struct {
	GameID         string
	Phase          string
	CurrentSeat    int32
	Dealer         int32
	RoundWind      string
	RoundNumber    int32
	TurnNumber     int32
	WallRemaining  int32
	DoraIndicators []string
	LastDiscard    string
	RiichiSticks   int32
	Honba          int32
	Players        []PlayerSnapshot
}

// PlayerSnapshot 单个玩家的公开信息
type PlayerSnapshot struct {
	Seat      int32
	Name      string
	Score     int32
	SeatWind  string
	IsDealer  bool
	IsRiichi  bool
	HandSize  int32
	MeldCount int32
	Discards  []string
	IsTenpai  bool
}

// MeldSnapshot 副露投影
type MeldSnapshot struct {
	Tiles  []string
	Type   string
	IsOpen bool
}

// HandSnapshot 某一座位的私有手牌投影
type HandSnapshot struct {
	Concealed    []string
	Melds        []MeldSnapshot
	Discards     []string
	WinningTiles []string
	IsTenpai     bool
	IsRiichi     bool
	IsFuriten    bool
	CanRiichi    bool
	ClosedKans   []string
	UpgradeKans  []string
}

// RankEntry 终局排名
type RankEntry struct {
	Seat  int32
	Name  string
	Score int32
	Rank  int32
}

// GameState 当前对局快照
func (e *Engine) GameState() *GameSnapshot {
	snap := &GameSnapshot{
		GameID:         e.ID,
		Phase:          e.phase.String(),
		CurrentSeat:    e.curSeat,
		Dealer:         e.dealer,
		RoundWind:      e.roundWind.Name(),
		RoundNumber:    e.roundNumber,
		TurnNumber:     e.turnNumber,
		WallRemaining:  e.wall.GetRestCount(),
		DoraIndicators: TileNames(e.wall.DoraIndicators()),
		RiichiSticks:   e.riichiSticks,
		Honba:          e.honba,
	}
	if e.lastDiscard.IsValid() {
		snap.LastDiscard = e.lastDiscard.Name()
	}
	for _, p := range e.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Seat:      p.seat,
			Name:      p.name,
			Score:     p.score,
			SeatWind:  p.hand.SeatWind().Name(),
			IsDealer:  p.isDealer,
			IsRiichi:  p.hand.IsRiichi(),
			HandSize:  int32(p.hand.TileCount()),
			MeldCount: int32(len(p.hand.Melds())),
			Discards:  TileNames(p.hand.Discards()),
			IsTenpai:  p.hand.IsTenpai(),
		})
	}
	return snap
}

// PlayerHand 某座位的手牌快照
func (e *Engine) PlayerHand(seat int32) *HandSnapshot {
	p := e.Player(seat)
	if p == nil {
		return nil
	}
	h := p.hand
	snap := &HandSnapshot{
		Concealed:    TileNames(h.Tiles()),
		Discards:     TileNames(h.Discards()),
		WinningTiles: TileNames(h.WinningTiles()),
		IsRiichi:     h.IsRiichi(),
		IsFuriten:    h.IsFuriten() || h.IsTempFuriten(),
		CanRiichi:    len(e.RiichiDiscards(seat)) > 0,
		ClosedKans:   TileNames(h.ClosedKonTiles()),
		UpgradeKans:  TileNames(h.UpgradeKonTiles()),
	}
	snap.IsTenpai = len(snap.WinningTiles) > 0
	for _, m := range h.Melds() {
		snap.Melds = append(snap.Melds, MeldSnapshot{
			Tiles:  TileNames(m.Tiles),
			Type:   m.TypeName(),
			IsOpen: m.IsOpen(),
		})
	}
	return snap
}

// SafeTiles 对该座位而言相对安全的打牌：已被全场舍出
// 且不是其他听牌者的和牌
func (e *Engine) SafeTiles(seat int32) []Tile {
	seen := make(map[Tile]bool)
	for _, p := range e.players {
		for _, t := range p.hand.Discards() {
			seen[t.Kind()] = true
		}
	}
	for _, p := range e.players {
		if p.seat == seat || !p.hand.IsTenpai() {
			continue
		}
		for _, t := range p.hand.WinningTiles() {
			delete(seen, t.Kind())
		}
	}
	return e.handKinds(seat, func(t Tile) bool { return seen[t.Kind()] })
}

// DangerousTiles 其他听牌者正在等待的手牌
func (e *Engine) DangerousTiles(seat int32) []Tile {
	waits := make(map[Tile]bool)
	for _, p := range e.players {
		if p.seat == seat || !p.hand.IsTenpai() {
			continue
		}
		for _, t := range p.hand.WinningTiles() {
			waits[t.Kind()] = true
		}
	}
	return e.handKinds(seat, func(t Tile) bool { return waits[t.Kind()] })
}

func (e *Engine) handKinds(seat int32, pred func(Tile) bool) []Tile {
	var tiles []Tile
	for _, t := range e.players[seat].hand.Tiles() {
		kind := t.Kind()
		if pred(kind) && !slices.Contains(tiles, kind) {
			tiles = append(tiles, kind)
		}
	}
	return tiles
}

// FinalRankings 终局排名，同分按座位序
func (e *Engine) FinalRankings() []RankEntry {
	entries := make([]RankEntry, 0, NP4)
	for _, p := range e.players {
		entries = append(entries, RankEntry{Seat: p.seat, Name: p.name, Score: p.score})
	}
	slices.SortStableFunc(entries, func(a, b RankEntry) int {
		return int(b.Score - a.Score)
	})
	for i := range entries {
		entries[i].Rank = int32(i + 1)
	}
	return entries
}
