package mahjong

import "slices"

// Yaku 役种判定结果
type Yaku struct {
	Name string
	Han  int32
}

// WinContext 和牌判定上下文，门前牌恒含和牌自身
type WinContext struct {
	Tiles     []Tile
	Melds     []*Meld
	WinTile   Tile
	IsTsumo   bool
	SeatWind  Tile
	RoundWind Tile

	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Chankan      bool
	Rinshan      bool
	Haitei       bool
	Houtei       bool
	Tenhou       bool
	Chiihou      bool

	DoraTiles    []Tile
	UraDoraTiles []Tile

	menzen    bool
	counts    TileCounts // 门前部分
	allCounts TileCounts // 含副露
	winKind   int8
	allTiles  []Tile
	decomps   []Decomposition
}

func NewWinContext(hand *Hand, winTile Tile, isTsumo bool, roundWind Tile) *WinContext {
	tiles := hand.Tiles()
	if len(tiles)%3 == 1 {
		tiles = append(tiles, winTile)
		SortTiles(tiles)
	}
	ctx := &WinContext{
		Tiles:        tiles,
		Melds:        hand.Melds(),
		WinTile:      winTile,
		IsTsumo:      isTsumo,
		SeatWind:     hand.SeatWind(),
		RoundWind:    roundWind,
		Riichi:       hand.IsRiichi(),
		DoubleRiichi: hand.IsDoubleRiichi(),
		Ippatsu:      hand.Ippatsu(),
	}
	ctx.prepare()
	return ctx
}

func (c *WinContext) prepare() {
	c.menzen = true
	for _, m := range c.Melds {
		if m.IsOpen() {
			c.menzen = false
		}
	}
	c.counts = NewTileCounts(c.Tiles)
	c.winKind = int8(c.WinTile.Kind34())
	c.allTiles = slices.Clone(c.Tiles)
	for _, m := range c.Melds {
		c.allTiles = append(c.allTiles, m.Tiles...)
	}
	c.allCounts = NewTileCounts(c.allTiles)
	c.decomps = huCore.Decompositions(c.counts, len(c.Melds))
}

// setInfo 一个完整面子：副露或门前拆解的一组
type setInfo struct {
	run       bool
	kind      int8
	kon       bool
	concealed bool // 暗刻或暗杠
}

// sets 固定副露与某一拆解合并后的全部面子。
// 荣和补完的刻子按明刻处理
func (c *WinContext) sets(d Decomposition) []setInfo {
	sets := make([]setInfo, 0, NP4)
	for _, m := range c.Melds {
		if m.Type == GroupTypeChow {
			sets = append(sets, setInfo{run: true, kind: int8(m.Kind34())})
			continue
		}
		sets = append(sets, setInfo{kind: int8(m.Kind34()), kon: m.IsKon(), concealed: !m.IsOpen()})
	}
	for _, p := range d.Parts {
		concealed := !p.Run && !(!c.IsTsumo && p.Kind == c.winKind)
		sets = append(sets, setInfo{run: p.Run, kind: p.Kind, concealed: concealed})
	}
	return sets
}

func kindTile(k int8) Tile {
	return TileFromKind34(int(k))
}

// YakuChecker 单个役种判定器
type YakuChecker interface {
	Check(ctx *WinContext) []Yaku
}

type yakuCheckerFunc func(ctx *WinContext) []Yaku

func (f yakuCheckerFunc) Check(ctx *WinContext) []Yaku {
	return f(ctx)
}

// yakuRegistry 役种注册表
var yakuRegistry = []YakuChecker{
	yakuCheckerFunc(checkRiichi),
	yakuCheckerFunc(checkIppatsu),
	yakuCheckerFunc(checkMenzenTsumo),
	yakuCheckerFunc(checkChankan),
	yakuCheckerFunc(checkRinshan),
	yakuCheckerFunc(checkHaiteiHoutei),
	yakuCheckerFunc(checkTenhouChiihou),
	yakuCheckerFunc(checkPinfu),
	yakuCheckerFunc(checkTanyao),
	yakuCheckerFunc(checkYakuhai),
	yakuCheckerFunc(checkChiitoitsu),
	yakuCheckerFunc(checkIipeikou),
	yakuCheckerFunc(checkSanshoku),
	yakuCheckerFunc(checkIttsu),
	yakuCheckerFunc(checkChantaJunchan),
	yakuCheckerFunc(checkToitoi),
	yakuCheckerFunc(checkSanankou),
	yakuCheckerFunc(checkHonroutou),
	yakuCheckerFunc(checkShousangen),
	yakuCheckerFunc(checkFlush),
	yakuCheckerFunc(checkYakuman),
}

// CheckAllYaku 役种总判定。宝牌不构成起和役，仅在已有役时计入
func CheckAllYaku(ctx *WinContext) []Yaku {
	var result []Yaku
	for _, checker := range yakuRegistry {
		result = append(result, checker.Check(ctx)...)
	}
	if len(result) > 0 {
		if n := countDora(ctx); n > 0 {
			result = append(result, Yaku{Name: "Dora", Han: n})
		}
	}
	return result
}

func checkRiichi(ctx *WinContext) []Yaku {
	if !ctx.Riichi {
		return nil
	}
	if ctx.DoubleRiichi {
		return []Yaku{{Name: "Double Riichi", Han: 2}}
	}
	return []Yaku{{Name: "Riichi", Han: 1}}
}

func checkIppatsu(ctx *WinContext) []Yaku {
	if ctx.Riichi && ctx.Ippatsu {
		return []Yaku{{Name: "Ippatsu", Han: 1}}
	}
	return nil
}

func checkMenzenTsumo(ctx *WinContext) []Yaku {
	if ctx.IsTsumo && ctx.menzen {
		return []Yaku{{Name: "Menzen Tsumo", Han: 1}}
	}
	return nil
}

func checkChankan(ctx *WinContext) []Yaku {
	if ctx.Chankan {
		return []Yaku{{Name: "Chankan", Han: 1}}
	}
	return nil
}

func checkRinshan(ctx *WinContext) []Yaku {
	if ctx.IsTsumo && ctx.Rinshan {
		return []Yaku{{Name: "Rinshan Kaihou", Han: 1}}
	}
	return nil
}

func checkHaiteiHoutei(ctx *WinContext) []Yaku {
	if ctx.IsTsumo && ctx.Haitei {
		return []Yaku{{Name: "Haitei Raoyue", Han: 1}}
	}
	if !ctx.IsTsumo && ctx.Houtei {
		return []Yaku{{Name: "Houtei Raoyui", Han: 1}}
	}
	return nil
}

func checkTenhouChiihou(ctx *WinContext) []Yaku {
	if ctx.Tenhou {
		return []Yaku{{Name: "Tenhou", Han: 13}}
	}
	if ctx.Chiihou {
		return []Yaku{{Name: "Chiihou", Han: 13}}
	}
	return nil
}

// checkPinfu 平和：全顺子、雀头非役牌、两面听
func checkPinfu(ctx *WinContext) []Yaku {
	if !ctx.menzen || len(ctx.Melds) > 0 {
		return nil
	}
	for _, d := range ctx.decomps {
		if !pinfuShape(ctx, d) {
			continue
		}
		return []Yaku{{Name: "Pinfu", Han: 1}}
	}
	return nil
}

func pinfuShape(ctx *WinContext, d Decomposition) bool {
	pair := kindTile(d.Pair)
	if pair.IsDragon() || pair.Kind() == ctx.SeatWind.Kind() || pair.Kind() == ctx.RoundWind.Kind() {
		return false
	}
	ryanmen := false
	for _, p := range d.Parts {
		if !p.Run {
			return false
		}
		// 两面听：和牌在顺子一端且非边张
		if ctx.winKind == p.Kind && int(p.Kind)%9 != 6 {
			ryanmen = true
		}
		if ctx.winKind == p.Kind+2 && int(p.Kind)%9 != 0 {
			ryanmen = true
		}
	}
	return ryanmen
}

func checkTanyao(ctx *WinContext) []Yaku {
	for _, t := range ctx.allTiles {
		if !t.IsSimple() {
			return nil
		}
	}
	return []Yaku{{Name: "Tanyao", Han: 1}}
}

// checkYakuhai 役牌刻子：三元牌与自风/场风，连风牌计两次
func checkYakuhai(ctx *WinContext) []Yaku {
	var n int32
	for _, dragon := range []Tile{TileHatsu, TileChun, TileHaku} {
		if ctx.allCounts[dragon.Kind34()] >= 3 {
			n++
		}
	}
	if ctx.allCounts[ctx.SeatWind.Kind34()] >= 3 {
		n++
	}
	if ctx.allCounts[ctx.RoundWind.Kind34()] >= 3 {
		n++
	}
	if n == 0 {
		return nil
	}
	return []Yaku{{Name: "Yakuhai", Han: n}}
}

func checkChiitoitsu(ctx *WinContext) []Yaku {
	if ctx.menzen && len(ctx.Melds) == 0 && IsSevenPairs(ctx.counts) {
		return []Yaku{{Name: "Chiitoitsu", Han: 2}}
	}
	return nil
}

// checkIipeikou 一盃口：门前两组相同顺子
func checkIipeikou(ctx *WinContext) []Yaku {
	if !ctx.menzen {
		return nil
	}
	for _, d := range ctx.decomps {
		var runs [KindCount]int
		for _, p := range d.Parts {
			if p.Run {
				runs[p.Kind]++
			}
		}
		for _, c := range runs {
			if c >= 2 {
				return []Yaku{{Name: "Iipeikou", Han: 1}}
			}
		}
	}
	return nil
}

// checkSanshoku 三色同顺
func checkSanshoku(ctx *WinContext) []Yaku {
	for _, d := range ctx.decomps {
		var runs [KindCount]bool
		for _, s := range ctx.sets(d) {
			if s.run {
				runs[s.kind] = true
			}
		}
		for p := 0; p <= 6; p++ {
			if runs[p] && runs[9+p] && runs[18+p] {
				han := int32(2)
				if !ctx.menzen {
					han = 1
				}
				return []Yaku{{Name: "Sanshoku Doujun", Han: han}}
			}
		}
	}
	return nil
}

// checkIttsu 一气通贯：同色123 456 789
func checkIttsu(ctx *WinContext) []Yaku {
	for _, d := range ctx.decomps {
		var runs [KindCount]bool
		for _, s := range ctx.sets(d) {
			if s.run {
				runs[s.kind] = true
			}
		}
		for _, base := range []int{0, 9, 18} {
			if runs[base] && runs[base+3] && runs[base+6] {
				han := int32(2)
				if !ctx.menzen {
					han = 1
				}
				return []Yaku{{Name: "Ittsu", Han: han}}
			}
		}
	}
	return nil
}

// checkChantaJunchan 混全带幺九/纯全带幺九：所有面子与雀头都带幺九
func checkChantaJunchan(ctx *WinContext) []Yaku {
	for _, d := range ctx.decomps {
		if !kindTile(d.Pair).IsOrphan() {
			continue
		}
		valid := true
		hasHonor := kindTile(d.Pair).IsHonor()
		for _, s := range ctx.sets(d) {
			t := kindTile(s.kind)
			if s.run {
				if int(s.kind)%9 != 0 && int(s.kind)%9 != 6 {
					valid = false
					break
				}
				continue
			}
			if !t.IsOrphan() {
				valid = false
				break
			}
			if t.IsHonor() {
				hasHonor = true
			}
		}
		if !valid {
			continue
		}
		if hasHonor {
			han := int32(2)
			if !ctx.menzen {
				han = 1
			}
			return []Yaku{{Name: "Chanta", Han: han}}
		}
		han := int32(3)
		if !ctx.menzen {
			han = 2
		}
		return []Yaku{{Name: "Junchan", Han: han}}
	}
	return nil
}

// checkToitoi 对对和
func checkToitoi(ctx *WinContext) []Yaku {
	for _, d := range ctx.decomps {
		allTriplet := true
		for _, s := range ctx.sets(d) {
			if s.run {
				allTriplet = false
				break
			}
		}
		if allTriplet {
			return []Yaku{{Name: "Toitoi", Han: 2}}
		}
	}
	return nil
}

// checkSanankou 三暗刻
func checkSanankou(ctx *WinContext) []Yaku {
	if maxConcealedTriplets(ctx) >= 3 {
		return []Yaku{{Name: "Sanankou", Han: 2}}
	}
	return nil
}

func maxConcealedTriplets(ctx *WinContext) int {
	best := 0
	for _, d := range ctx.decomps {
		n := 0
		for _, s := range ctx.sets(d) {
			if s.concealed {
				n++
			}
		}
		best = max(best, n)
	}
	return best
}

// checkHonroutou 混老头：全为幺九牌
func checkHonroutou(ctx *WinContext) []Yaku {
	hasHonor := false
	for _, t := range ctx.allTiles {
		if !t.IsOrphan() {
			return nil
		}
		if t.IsHonor() {
			hasHonor = true
		}
	}
	if !hasHonor {
		return nil // 清老头另计役满
	}
	for _, t := range ctx.allTiles {
		if !t.IsHonor() {
			return []Yaku{{Name: "Honroutou", Han: 2}}
		}
	}
	return nil // 字一色另计役满
}

// checkShousangen 小三元
func checkShousangen(ctx *WinContext) []Yaku {
	triplets, pair := 0, 0
	for _, dragon := range []Tile{TileHatsu, TileChun, TileHaku} {
		switch n := ctx.allCounts[dragon.Kind34()]; {
		case n >= 3:
			triplets++
		case n == 2:
			pair++
		}
	}
	if triplets == 2 && pair == 1 {
		return []Yaku{{Name: "Shousangen", Han: 2}}
	}
	return nil
}

// checkFlush 混一色/清一色
func checkFlush(ctx *WinContext) []Yaku {
	var suits [3]bool
	hasHonor := false
	for _, t := range ctx.allTiles {
		if t.IsHonor() {
			hasHonor = true
		} else {
			suits[t.Color()] = true
		}
	}
	count := 0
	for _, used := range suits {
		if used {
			count++
		}
	}
	if count != 1 {
		return nil
	}
	if hasHonor {
		han := int32(3)
		if !ctx.menzen {
			han = 2
		}
		return []Yaku{{Name: "Honitsu", Han: han}}
	}
	han := int32(6)
	if !ctx.menzen {
		han = 5
	}
	return []Yaku{{Name: "Chinitsu", Han: han}}
}

// checkYakuman 役满系，特殊形态按双倍役满26番计
func checkYakuman(ctx *WinContext) []Yaku {
	var result []Yaku

	if ctx.menzen && len(ctx.Melds) == 0 && IsThirteenOrphans(ctx.counts) {
		if ctx.counts[ctx.winKind] == 2 {
			result = append(result, Yaku{Name: "Kokushi Musou 13-Wait", Han: 26})
		} else {
			result = append(result, Yaku{Name: "Kokushi Musou", Han: 13})
		}
	}

	if y := checkSuuankou(ctx); y != nil {
		result = append(result, *y)
	}

	dragons := 0
	for _, dragon := range []Tile{TileHatsu, TileChun, TileHaku} {
		if ctx.allCounts[dragon.Kind34()] >= 3 {
			dragons++
		}
	}
	if dragons == 3 {
		result = append(result, Yaku{Name: "Daisangen", Han: 13})
	}

	kons := 0
	for _, m := range ctx.Melds {
		if m.IsKon() {
			kons++
		}
	}
	if kons == 4 {
		result = append(result, Yaku{Name: "Suukantsu", Han: 13})
	}

	if allOf(ctx.allTiles, Tile.IsHonor) {
		result = append(result, Yaku{Name: "Tsuuiisou", Han: 13})
	}
	if allOf(ctx.allTiles, Tile.IsTerminal) {
		result = append(result, Yaku{Name: "Chinroutou", Han: 13})
	}
	if allOf(ctx.allTiles, Tile.IsGreen) {
		result = append(result, Yaku{Name: "Ryuuiisou", Han: 13})
	}

	if y := checkChuuren(ctx); y != nil {
		result = append(result, *y)
	}
	if y := checkSuushii(ctx); y != nil {
		result = append(result, *y)
	}
	return result
}

func allOf(tiles []Tile, pred func(Tile) bool) bool {
	for _, t := range tiles {
		if !pred(t) {
			return false
		}
	}
	return true
}

// checkSuuankou 四暗刻，单骑听牌为双倍役满
func checkSuuankou(ctx *WinContext) *Yaku {
	if !ctx.menzen {
		return nil
	}
	tanki, plain := false, false
	for _, d := range ctx.decomps {
		n := 0
		for _, s := range ctx.sets(d) {
			if s.concealed {
				n++
			}
		}
		if n != NP4 {
			continue
		}
		if d.Pair == ctx.winKind {
			tanki = true
		} else {
			plain = true
		}
	}
	if tanki {
		return &Yaku{Name: "Suuankou Tanki", Han: 26}
	}
	if plain {
		return &Yaku{Name: "Suuankou", Han: 13}
	}
	return nil
}

// checkChuuren 九莲宝灯，纯正九面听为双倍役满
func checkChuuren(ctx *WinContext) *Yaku {
	if !ctx.menzen || len(ctx.Melds) > 0 {
		return nil
	}
	color := ColorUndefined
	for _, t := range ctx.Tiles {
		if !t.IsSuit() {
			return nil
		}
		if color == ColorUndefined {
			color = t.Color()
		} else if t.Color() != color {
			return nil
		}
	}
	base := Kind34BeginByColor[color]
	extra := -1
	for p := 0; p < 9; p++ {
		want := int8(1)
		if p == 0 || p == 8 {
			want = 3
		}
		diff := ctx.counts[base+p] - want
		switch diff {
		case 0:
		case 1:
			if extra >= 0 {
				return nil
			}
			extra = p
		default:
			return nil
		}
	}
	if extra < 0 {
		return nil
	}
	if int(ctx.winKind) == base+extra {
		return &Yaku{Name: "Junsei Chuuren Poutou", Han: 26}
	}
	return &Yaku{Name: "Chuuren Poutou", Han: 13}
}

// checkSuushii 大四喜/小四喜，前者双倍役满
func checkSuushii(ctx *WinContext) *Yaku {
	triplets, pair := 0, 0
	for _, wind := range WindTiles {
		switch n := ctx.allCounts[wind.Kind34()]; {
		case n >= 3:
			triplets++
		case n == 2:
			pair++
		}
	}
	if triplets == NP4 {
		return &Yaku{Name: "Daisuushii", Han: 26}
	}
	if triplets == 3 && pair == 1 {
		return &Yaku{Name: "Shousuushii", Han: 13}
	}
	return nil
}

// countDora 宝牌·里宝牌·赤宝牌总数
func countDora(ctx *WinContext) int32 {
	var n int32
	for _, t := range ctx.allTiles {
		for _, d := range ctx.DoraTiles {
			if t.Kind() == d.Kind() {
				n++
			}
		}
		for _, d := range ctx.UraDoraTiles {
			if t.Kind() == d.Kind() {
				n++
			}
		}
		if t.IsRed() {
			n++
		}
	}
	return n
}
