package mahjong

// 测试桩：绕过摸打流程直接布置局面。

// SetConcealed 重置座位的暗手牌
func (e *Engine) SetConcealed(seat int32, names string) {
	p := e.players[seat]
	h := NewHand(p.hand.SeatWind())
	h.PutTiles(ParseTiles(names))
	p.hand = h
}

// ForceDraw 视作该座位摸进一张牌并获得行动权
func (e *Engine) ForceDraw(seat int32, name string) {
	e.players[seat].hand.PutTile(ParseTile(name))
	e.curSeat = seat
}

// ForceResult 直接结束本局并写入结果
func (e *Engine) ForceResult(winner, loser int32, tenpai []int32, drawn bool) {
	e.phase = PhaseEnded
	e.result = &RoundResult{Winner: winner, Loser: loser, TenpaiSeats: tenpai, Drawn: drawn}
}
