package mahjong

import (
	"fmt"
	"math/rand"
	"slices"
)

// 王牌区布局：0~3岭上牌，4~7宝牌指示，9~12里宝牌指示
const (
	doraIndicatorBase = 4
	uraIndicatorBase  = 9
)

// Wall 牌墙：活动区供正常摸牌，王牌区持有岭上牌与宝牌指示牌
type Wall struct {
	rule      *Rule
	live      []Tile
	dead      []Tile
	doraShown int
	rinshan   int // 已摸岭上牌数
}

func NewWall(rule *Rule, rng *rand.Rand) *Wall {
	w := &Wall{rule: rule, doraShown: 1}
	tiles := allTiles(rule)

	// 填充并同时随机化牌墙
	wall := make([]Tile, len(tiles))
	for i, tile := range tiles {
		pos := rng.Intn(i + 1)
		if pos != i {
			wall[i] = wall[pos]
		}
		wall[pos] = tile
	}

	n := len(wall) - DeadWallTileCount
	w.live, w.dead = wall[:n], wall[n:]
	return w
}

// allTiles 每种4张；启用赤牌时每门数牌的一张5替换为赤五
func allTiles(rule *Rule) []Tile {
	tiles := make([]Tile, 0, TotalTileCount)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := range PointCountByColor[c] {
			for i := 0; i < 4; i++ {
				tile := MakeTile(c, p)
				if rule.UseRedFives && i == 0 && IsSuitColor(c) && p == 4 {
					tile = MakeSpecialTile(c, p, FlagRed)
				}
				tiles = append(tiles, tile)
			}
		}
	}
	return tiles
}

// DrawTile 从活动区摸牌
func (w *Wall) DrawTile() (Tile, error) {
	if len(w.live) == 0 {
		return TileNull, ErrEmptyWall
	}
	tile := w.live[0]
	w.live = w.live[1:]
	return tile, nil
}

// Deal 配牌阶段连续发牌
func (w *Wall) Deal(count int) []Tile {
	tiles := make([]Tile, count)
	copy(tiles, w.live[:count])
	w.live = w.live[count:]
	return tiles
}

// DrawReplacement 杠后摸岭上牌
func (w *Wall) DrawReplacement() (Tile, error) {
	if w.rinshan >= MaxKonCount {
		return TileNull, fmt.Errorf("%w: no replacement tile left", ErrRuleViolation)
	}
	tile := w.dead[w.rinshan]
	w.rinshan++
	return tile, nil
}

// GetRestCount 获取活动区剩余牌数
func (w *Wall) GetRestCount() int32 {
	return int32(len(w.live))
}

// AddDoraIndicator 杠后新增一枚宝牌指示，到达上限返回false
func (w *Wall) AddDoraIndicator() bool {
	if w.doraShown >= w.rule.MaxDoraShown {
		return false
	}
	w.doraShown++
	return true
}

func (w *Wall) DoraIndicators() []Tile {
	return slices.Clone(w.dead[doraIndicatorBase : doraIndicatorBase+w.doraShown])
}

func (w *Wall) UraIndicators() []Tile {
	return slices.Clone(w.dead[uraIndicatorBase : uraIndicatorBase+w.doraShown])
}

// DoraTiles 当前宝牌（指示牌的下一张）
func (w *Wall) DoraTiles() []Tile {
	return nextTiles(w.DoraIndicators())
}

// UraDoraTiles 里宝牌，仅立直和牌时计入
func (w *Wall) UraDoraTiles() []Tile {
	return nextTiles(w.UraIndicators())
}

func nextTiles(indicators []Tile) []Tile {
	tiles := make([]Tile, len(indicators))
	for i, t := range indicators {
		tiles[i] = t.NextForDora()
	}
	return tiles
}

func (w *Wall) HasTile(tile Tile) bool {
	return slices.Contains(w.live, tile)
}

func (w *Wall) Count(tile Tile) int {
	count := 0
	for _, t := range w.live {
		if t == tile {
			count++
		}
	}
	return count
}

// TotalCount 活动区与王牌区未摸走的总牌数，守恒校验用
func (w *Wall) TotalCount() int {
	return len(w.live) + len(w.dead) - w.rinshan
}
