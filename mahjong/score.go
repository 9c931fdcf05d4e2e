package mahjong

// 封顶基础点
const (
	BaseMangan    = 2000
	BaseHaneman   = 3000
	BaseBaiman    = 4000
	BaseSanbaiman = 6000
	BaseYakuman   = 8000
)

// ScoreResult 一次和牌的完整算分
type ScoreResult struct {
	Yaku     []Yaku
	Han      int32
	Fu       int32
	Base     int32
	Total    int32            // 和牌者总得点，不含供托
	Payments map[string]int32 // ron: discarder; 庄家自摸: all; 闲家自摸: dealer/non_dealer
}

// TotalHan 宝牌在内的总番数
func TotalHan(yaku []Yaku) int32 {
	var han int32
	for _, y := range yaku {
		han += y.Han
	}
	return han
}

// CountYakuman 役满倍数合计，13番役满、26番双倍役满，宝牌不计
func CountYakuman(yaku []Yaku) int32 {
	var count int32
	for _, y := range yaku {
		if y.Name == "Dora" {
			continue
		}
		if y.Han >= 13 {
			count += max(1, y.Han/13)
		}
	}
	return count
}

// HasRealYaku 除宝牌外是否有役
func HasRealYaku(yaku []Yaku) bool {
	for _, y := range yaku {
		if y.Name != "Dora" {
			return true
		}
	}
	return false
}

// CalculateScore 和牌算分：符×2^(番+2)，封顶后按庄闲与自摸/荣和分摊，本场另加
func CalculateScore(ctx *WinContext, yaku []Yaku, isDealer bool, honba int32, rule *Rule) *ScoreResult {
	han := TotalHan(yaku)
	yakuman := CountYakuman(yaku)

	res := &ScoreResult{Yaku: yaku, Han: han, Payments: make(map[string]int32)}
	if yakuman > 0 {
		res.Base = BaseYakuman * yakuman
	} else {
		res.Fu = CalculateFu(ctx, yaku)
		res.Base = basePoints(res.Fu, han)
	}

	if ctx.IsTsumo {
		if isDealer {
			pay := roundUp100(res.Base*2) + honba*rule.HonbaTsumoPay
			res.Payments["all"] = pay
			res.Total = pay * 3
		} else {
			dealerPay := roundUp100(res.Base*2) + honba*rule.HonbaTsumoPay
			otherPay := roundUp100(res.Base) + honba*rule.HonbaTsumoPay
			res.Payments["dealer"] = dealerPay
			res.Payments["non_dealer"] = otherPay
			res.Total = dealerPay + otherPay*2
		}
	} else {
		multiplier := int32(4)
		if isDealer {
			multiplier = 6
		}
		res.Total = roundUp100(res.Base*multiplier) + honba*rule.HonbaRonPay
		res.Payments["discarder"] = res.Total
	}
	return res
}

func basePoints(fu, han int32) int32 {
	switch {
	case han >= 13:
		return BaseYakuman
	case han >= 11:
		return BaseSanbaiman
	case han >= 8:
		return BaseBaiman
	case han >= 6:
		return BaseHaneman
	}
	base := fu * (1 << (han + 2))
	if han >= 5 || base >= BaseMangan {
		return BaseMangan
	}
	return base
}

func roundUp100(points int32) int32 {
	return (points + 99) / 100 * 100
}

func roundUp10(points int32) int32 {
	return (points + 9) / 10 * 10
}

// CalculateFu 符数计算。固定符型：国士0符、七对25符、平和自摸20符；
// 标准型在所有拆解上取最大值
func CalculateFu(ctx *WinContext, yaku []Yaku) int32 {
	names := make(map[string]bool, len(yaku))
	for _, y := range yaku {
		names[y.Name] = true
	}
	if names["Kokushi Musou"] || names["Kokushi Musou 13-Wait"] {
		return 0
	}
	if names["Chiitoitsu"] {
		return 25
	}
	pinfu := names["Pinfu"]
	if pinfu && ctx.IsTsumo {
		return 20
	}

	if len(ctx.decomps) == 0 {
		return 30
	}

	base := int32(20)
	if ctx.IsTsumo && !pinfu {
		base += 2
	} else if !ctx.IsTsumo && ctx.menzen {
		base += 10 // 门前荣和
	}
	for _, m := range ctx.Melds {
		base += fixedMeldFu(m)
	}

	var maxFu int32
	for _, d := range ctx.decomps {
		fu := base
		fu += pairFu(kindTile(d.Pair), ctx.SeatWind, ctx.RoundWind)
		for _, p := range d.Parts {
			if p.Run {
				continue
			}
			// 荣和补完的刻子按明刻计符
			open := !ctx.IsTsumo && p.Kind == ctx.winKind
			fu += tripletFu(kindTile(p.Kind), open, false)
		}
		if !pinfu {
			fu += waitFu(ctx, d)
		}
		fu = roundUp10(fu)
		if fu < 30 {
			fu = 30
		}
		maxFu = max(maxFu, fu)
	}
	return maxFu
}

func fixedMeldFu(m *Meld) int32 {
	if m.Type == GroupTypeChow {
		return 0
	}
	return tripletFu(m.Kind(), m.IsOpen(), m.IsKon())
}

// tripletFu 刻子基础符：明2暗4，杠×4，幺九×2
func tripletFu(tile Tile, open, kon bool) int32 {
	fu := int32(4)
	if open {
		fu = 2
	}
	if kon {
		fu *= 4
	}
	if tile.IsOrphan() {
		fu *= 2
	}
	return fu
}

// pairFu 雀头符：三元牌2符，自风/场风各2符
func pairFu(pair, seatWind, roundWind Tile) int32 {
	var fu int32
	if pair.IsDragon() {
		return 2
	}
	if pair.IsWind() {
		if pair.Kind() == seatWind.Kind() {
			fu += 2
		}
		if pair.Kind() == roundWind.Kind() {
			fu += 2
		}
	}
	return fu
}

// waitFu 听型符：单骑、嵌张、边张各2符
func waitFu(ctx *WinContext, d Decomposition) int32 {
	if d.Pair == ctx.winKind {
		return 2
	}
	for _, p := range d.Parts {
		if !p.Run {
			continue
		}
		switch {
		case ctx.winKind == p.Kind+1:
			return 2 // 嵌张
		case int(p.Kind)%9 == 0 && ctx.winKind == p.Kind+2:
			return 2 // 12边张听3
		case int(p.Kind)%9 == 6 && ctx.winKind == p.Kind:
			return 2 // 89边张听7
		}
	}
	return 0
}
