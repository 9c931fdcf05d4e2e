package mahjong

import (
	"slices"
	"sync"
)

// TileCounts 34种牌的计数向量
type TileCounts [KindCount]int8

func NewTileCounts(tiles []Tile) TileCounts {
	var c TileCounts
	for _, t := range tiles {
		if idx := t.Kind34(); idx >= 0 {
			c[idx]++
		}
	}
	return c
}

func (c *TileCounts) Total() int {
	total := 0
	for _, n := range c {
		total += int(n)
	}
	return total
}

// runStartOK 该索引可作顺子起点
var runStartOK = func() [KindCount]bool {
	var ok [KindCount]bool
	for k := 0; k < 27; k++ {
		if k%9 <= 6 {
			ok[k] = true
		}
	}
	return ok
}()

// orphanKinds 十三幺的13种幺九牌
var orphanKinds = [...]int{0, 8, 9, 17, 18, 26, 27, 28, 29, 30, 31, 32, 33}

// MeldPart 门前手牌拆出的一组面子
type MeldPart struct {
	Run  bool
	Kind int8 // 34索引，顺子为最小牌
}

// Decomposition 标准型的一次完整拆解（不含副露）
type Decomposition struct {
	Pair  int8
	Parts []MeldPart
}

type huKey struct {
	counts TileCounts
	need   int8
}

// HuCore 胡牌判定核心：计数向量回溯搜索，子问题记忆化
type HuCore struct {
	mu   sync.Mutex
	memo map[huKey]bool
}

func NewHuCore() *HuCore {
	return &HuCore{memo: make(map[huKey]bool)}
}

// 包级共享实例，记忆表跨对局复用
var huCore = NewHuCore()

func DefaultHuCore() *HuCore {
	return huCore
}

// IsComplete 门前计数向量加副露数是否构成和牌形
func (h *HuCore) IsComplete(counts TileCounts, meldCount int) bool {
	if meldCount == 0 && (IsSevenPairs(counts) || IsThirteenOrphans(counts)) {
		return true
	}
	return h.CheckStandard(counts, meldCount)
}

// CheckStandard 标准型：雀头 + (4-副露数)组面子
func (h *HuCore) CheckStandard(counts TileCounts, meldCount int) bool {
	need := NP4 - meldCount
	if counts.Total() != 3*need+2 {
		return false
	}
	for k := 0; k < KindCount; k++ {
		if counts[k] < 2 {
			continue
		}
		counts[k] -= 2
		ok := h.checkMelds(counts, int8(need))
		counts[k] += 2
		if ok {
			return true
		}
	}
	return false
}

func (h *HuCore) checkMelds(counts TileCounts, need int8) bool {
	if need == 0 {
		return true
	}
	key := huKey{counts: counts, need: need}
	h.mu.Lock()
	if v, ok := h.memo[key]; ok {
		h.mu.Unlock()
		return v
	}
	h.mu.Unlock()

	res := false
	k := 0
	for k < KindCount && counts[k] == 0 {
		k++
	}
	if k < KindCount {
		if counts[k] >= 3 {
			counts[k] -= 3
			res = h.checkMelds(counts, need-1)
			counts[k] += 3
		}
		if !res && runStartOK[k] && counts[k+1] > 0 && counts[k+2] > 0 {
			counts[k]--
			counts[k+1]--
			counts[k+2]--
			res = h.checkMelds(counts, need-1)
			counts[k]++
			counts[k+1]++
			counts[k+2]++
		}
	}

	h.mu.Lock()
	h.memo[key] = res
	h.mu.Unlock()
	return res
}

// Decompositions 枚举全部标准型拆解，役种与符数判定用
func (h *HuCore) Decompositions(counts TileCounts, meldCount int) []Decomposition {
	need := NP4 - meldCount
	if counts.Total() != 3*need+2 {
		return nil
	}
	var out []Decomposition
	parts := make([]MeldPart, 0, need)
	for k := 0; k < KindCount; k++ {
		if counts[k] < 2 {
			continue
		}
		counts[k] -= 2
		h.enumMelds(&counts, int8(k), parts, &out)
		counts[k] += 2
	}
	return out
}

// enumMelds 按最小非零索引推进：该种牌只能被自身刻子或以其起始的顺子消耗，
// 一次性决定其全部去向，保证每种拆解只枚举一次
func (h *HuCore) enumMelds(counts *TileCounts, pair int8, parts []MeldPart, out *[]Decomposition) {
	k := 0
	for k < KindCount && counts[k] == 0 {
		k++
	}
	if k == KindCount {
		*out = append(*out, Decomposition{Pair: pair, Parts: slices.Clone(parts)})
		return
	}

	c := counts[k]
	if h.takeRuns(counts, k, int(c)) {
		next := parts
		for range c {
			next = append(next, MeldPart{Run: true, Kind: int8(k)})
		}
		h.enumMelds(counts, pair, next, out)
		h.untakeRuns(counts, k, int(c))
	}
	if c >= 3 {
		counts[k] -= 3
		r := int(c - 3)
		if h.takeRuns(counts, k, r) {
			next := append(parts, MeldPart{Run: false, Kind: int8(k)})
			for range r {
				next = append(next, MeldPart{Run: true, Kind: int8(k)})
			}
			h.enumMelds(counts, pair, next, out)
			h.untakeRuns(counts, k, r)
		}
		counts[k] += 3
	}
}

func (h *HuCore) takeRuns(counts *TileCounts, k, n int) bool {
	if n == 0 {
		return true
	}
	if !runStartOK[k] || int(counts[k+1]) < n || int(counts[k+2]) < n {
		return false
	}
	counts[k] -= int8(n)
	counts[k+1] -= int8(n)
	counts[k+2] -= int8(n)
	return true
}

func (h *HuCore) untakeRuns(counts *TileCounts, k, n int) {
	if n == 0 {
		return
	}
	counts[k] += int8(n)
	counts[k+1] += int8(n)
	counts[k+2] += int8(n)
}

// IsSevenPairs 七对子：7种各两张，不允许同种四张拆两对
func IsSevenPairs(counts TileCounts) bool {
	pairs := 0
	for _, n := range counts {
		switch n {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsThirteenOrphans 国士无双：13种幺九齐全，其一成对
func IsThirteenOrphans(counts TileCounts) bool {
	if counts.Total() != TileCountInitBanker {
		return false
	}
	pair := false
	for _, k := range orphanKinds {
		switch counts[k] {
		case 1:
		case 2:
			if pair {
				return false
			}
			pair = true
		default:
			return false
		}
	}
	return pair
}

// WinningKinds 13张形态的全部和牌种（34索引），逐种试入
func (h *HuCore) WinningKinds(counts TileCounts, meldCount int) []int {
	var kinds []int
	for k := 0; k < KindCount; k++ {
		if counts[k] >= 4 {
			continue
		}
		counts[k]++
		if h.IsComplete(counts, meldCount) {
			kinds = append(kinds, k)
		}
		counts[k]--
	}
	return kinds
}
