package mahjong

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"

	"github.com/kevin-chtw/tw_riichi/utils"
)

// ActionRecord 已执行操作的流水记录
type ActionRecord struct {
	Seat    int32
	Operate int
	Tile    Tile
}

// RoundResult 一局的结局
type RoundResult struct {
	Winner      int32 // 流局为SeatNull
	Loser       int32 // 自摸或流局为SeatNull
	Score       *ScoreResult
	TenpaiSeats []int32
	Drawn       bool
}

// chankanState 加杠宣言后的抢杠窗口
type chankanState struct {
	tile    Tile
	seat    int32
	meld    *Meld
	waiters map[int32]bool
}

// Engine 立直麻将对局引擎。所有操作同步执行，
// 违规操作以失败的ActionResult返回而不中断对局
type Engine struct {
	ID   string
	rule *Rule
	rng  *rand.Rand

	players []*Player
	wall    *Wall

	phase        EPhase
	curSeat      int32
	dealer       int32
	roundWind    Tile
	roundNumber  int32
	turnNumber   int32
	honba        int32
	riichiSticks int32
	finished     bool

	lastDiscard     Tile
	lastDiscardSeat int32
	lastKanDraw     bool

	pendingChankan *chankanState
	history        []ActionRecord
	result         *RoundResult
}

type Option func(*Engine)

func WithRule(rule *Rule) Option {
	return func(e *Engine) { e.rule = rule }
}

func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithFileLogging 将引擎日志写入按天轮转的文件
func WithFileLogging(level logrus.Level, logDir string) Option {
	return func(e *Engine) { logger.Log = utils.Logger(level, logDir) }
}

// NewEngine 创建四人对局。人数不符是唯一的构造错误
func NewEngine(names []string, opts ...Option) (*Engine, error) {
	if len(names) != NP4 {
		return nil, ErrPlayerCount
	}
	e := &Engine{
		ID:              uuid.NewString(),
		rule:            NewRule(),
		dealer:          0,
		roundWind:       TileEast,
		roundNumber:     1,
		lastDiscard:     TileNull,
		lastDiscardSeat: SeatNull,
		curSeat:         SeatNull,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.players = make([]*Player, NP4)
	for i, name := range names {
		e.players[i] = NewPlayer(int32(i), name, WindTiles[i], e.rule.InitialScore)
	}
	e.players[e.dealer].isDealer = true
	e.startRound()
	return e, nil
}

// startRound 洗牌、配牌：庄家14张，闲家13张
func (e *Engine) startRound() {
	e.wall = NewWall(e.rule, e.rng)
	e.phase = PhaseDealing
	e.curSeat = e.dealer
	e.turnNumber = 0
	e.lastDiscard = TileNull
	e.lastDiscardSeat = SeatNull
	e.lastKanDraw = false
	e.pendingChankan = nil
	e.result = nil
	e.history = e.history[:0]

	for _, p := range e.players {
		p.hand.PutTiles(e.wall.Deal(TileCountInitNormal))
	}
	tile, _ := e.wall.DrawTile()
	e.players[e.dealer].hand.PutTile(tile)
	e.phase = PhasePlaying
	logger.Log.Infof("game %s: %s %d dealt, dealer seat %d, dora %s",
		e.ID, e.roundWind.Name(), e.roundNumber, e.dealer, TilesName(e.wall.DoraTiles()))
}

func (e *Engine) Rule() *Rule          { return e.rule }
func (e *Engine) Phase() EPhase        { return e.phase }
func (e *Engine) CurrentSeat() int32   { return e.curSeat }
func (e *Engine) Dealer() int32        { return e.dealer }
func (e *Engine) RoundWind() Tile      { return e.roundWind }
func (e *Engine) RoundNumber() int32   { return e.roundNumber }
func (e *Engine) TurnNumber() int32    { return e.turnNumber }
func (e *Engine) Honba() int32         { return e.honba }
func (e *Engine) RiichiSticks() int32  { return e.riichiSticks }
func (e *Engine) LastDiscard() Tile    { return e.lastDiscard }
func (e *Engine) Wall() *Wall          { return e.wall }
func (e *Engine) Result() *RoundResult { return e.result }

func (e *Engine) Player(seat int32) *Player {
	if seat < 0 || seat >= NP4 {
		return nil
	}
	return e.players[seat]
}

func (e *Engine) History() []ActionRecord {
	return slices.Clone(e.history)
}

// ValidActions 某座位当前可用的操作名
func (e *Engine) ValidActions(seat int32) []string {
	actions := make([]string, 0, 5)
	if e.phase != PhasePlaying || seat < 0 || seat >= NP4 {
		return actions
	}
	if e.pendingChankan != nil {
		if e.pendingChankan.waiters[seat] {
			actions = append(actions, GetOperateName(OperateRon))
		}
		return append(actions, GetOperateName(OperatePass))
	}

	p := e.players[seat]
	if e.curSeat == seat {
		if p.hand.TileCount()%3 == 2 {
			actions = append(actions, GetOperateName(OperateDiscard))
			if p.hand.LastDraw().IsValid() && e.canTsumo(seat) {
				actions = append(actions, GetOperateName(OperateTsumo))
			}
			if len(e.RiichiDiscards(seat)) > 0 {
				actions = append(actions, GetOperateName(OperateRiichi))
			}
			if e.hasSelfKon(seat) {
				actions = append(actions, GetOperateName(OperateKon))
			}
		}
	} else if e.lastDiscard.IsValid() {
		h := p.hand
		if h.CanRon(e.lastDiscard) {
			actions = append(actions, GetOperateName(OperateRon))
		}
		if !h.IsRiichi() {
			if h.CanPon(e.lastDiscard) {
				actions = append(actions, GetOperateName(OperatePon))
			}
			if h.CanZhiKon(e.lastDiscard) && e.konCount() < MaxKonCount {
				actions = append(actions, GetOperateName(OperateKon))
			}
			if GetNextSeat(e.lastDiscardSeat, 1, NP4) == seat && len(h.ChowOptions(e.lastDiscard)) > 0 {
				actions = append(actions, GetOperateName(OperateChow))
			}
		}
	}
	return append(actions, GetOperateName(OperatePass))
}

// ValidOperates ValidActions的位掩码形式
func (e *Engine) ValidOperates(seat int32) Operates {
	var ops Operates
	for _, name := range e.ValidActions(seat) {
		ops.AddOperate(int32(GetOperateID(name)))
	}
	return ops
}

// Execute 执行一次操作。联合类型穷尽匹配
func (e *Engine) Execute(seat int32, act Action) *ActionResult {
	if seat < 0 || seat >= NP4 {
		return failResult(fmt.Errorf("%w: bad seat %d", ErrInvalidAction, seat))
	}
	if e.phase != PhasePlaying {
		return failResult(fmt.Errorf("%w: round is not in progress", ErrInvalidAction))
	}

	var res *ActionResult
	actTile := TileNull
	switch a := act.(type) {
	case DiscardAction:
		actTile = a.Tile
		res = e.executeDiscard(seat, a.Tile, false)
	case RiichiAction:
		actTile = a.Tile
		res = e.executeRiichi(seat, a.Tile)
	case TsumoAction:
		res = e.executeTsumo(seat)
	case RonAction:
		res = e.executeRon(seat)
	case PonAction:
		res = e.executePon(seat)
	case ChiiAction:
		res = e.executeChii(seat, a.Tiles)
	case KonAction:
		actTile = a.Tile
		res = e.executeKon(seat, a.Tile)
	case PassAction:
		res = e.executePass(seat)
	default:
		res = failResult(fmt.Errorf("%w: unknown action", ErrInvalidAction))
	}

	if res.Success {
		e.history = append(e.history, ActionRecord{Seat: seat, Operate: act.Op(), Tile: actTile})
	} else if res.Err != nil {
		logrus.Errorf("game %s: seat %d %s rejected: %v", e.ID, seat, GetOperateName(act.Op()), res.Err)
	}

	if res.Success && !res.GameEnded && e.phase == PhasePlaying {
		if drawRes := e.maybeExhaustiveDraw(); drawRes != nil {
			return drawRes
		}
	}
	return res
}

// maybeExhaustiveDraw 活动区摸完且无人可荣和时即时流局
func (e *Engine) maybeExhaustiveDraw() *ActionResult {
	if e.wall.GetRestCount() > 0 || e.pendingChankan != nil {
		return nil
	}
	if e.lastDiscard.IsValid() {
		for _, p := range e.players {
			if p.seat != e.lastDiscardSeat && p.hand.CanRon(e.lastDiscard) {
				return nil // 河底捞鱼的机会
			}
		}
	}
	return e.handleExhaustiveDraw()
}

func (e *Engine) executeDiscard(seat int32, tile Tile, viaRiichi bool) *ActionResult {
	if seat != e.curSeat || e.pendingChankan != nil {
		return failResult(fmt.Errorf("%w: not your turn", ErrInvalidAction))
	}
	h := e.players[seat].hand
	if h.TileCount()%3 != 2 {
		return failResult(fmt.Errorf("%w: nothing to discard", ErrInvalidAction))
	}
	if h.IsRiichi() && !viaRiichi && tile.Kind() != h.LastDraw().Kind() {
		return failResult(fmt.Errorf("%w: riichi hand is locked", ErrRuleViolation))
	}
	removed, ok := h.Discard(tile)
	if !ok {
		return failResult(fmt.Errorf("%w: %s not in hand", ErrIllegalTile, tile.Name()))
	}
	e.lastDiscard = removed
	e.lastDiscardSeat = seat
	e.lastKanDraw = false

	// 每次打牌后全员重算永久振听
	for _, p := range e.players {
		p.hand.UpdateFuriten()
	}
	return okResult("discarded " + removed.Name())
}

// RiichiDiscards 打出后仍听牌的立直宣言牌
func (e *Engine) RiichiDiscards(seat int32) []Tile {
	p := e.players[seat]
	h := p.hand
	if h.IsRiichi() || !h.IsClosed() || p.score < e.rule.RiichiMinScore {
		return nil
	}
	if h.TileCount()%3 != 2 || e.wall.GetRestCount() == 0 {
		return nil
	}
	counts := h.Counts()
	var tiles []Tile
	for k := 0; k < KindCount; k++ {
		if counts[k] == 0 {
			continue
		}
		counts[k]--
		if len(huCore.WinningKinds(counts, len(h.Melds()))) > 0 {
			tiles = append(tiles, TileFromKind34(k))
		}
		counts[k]++
	}
	return tiles
}

func (e *Engine) executeRiichi(seat int32, tile Tile) *ActionResult {
	if seat != e.curSeat || e.pendingChankan != nil {
		return failResult(fmt.Errorf("%w: not your turn", ErrInvalidAction))
	}
	p := e.players[seat]
	h := p.hand
	if h.IsRiichi() || !h.IsClosed() || p.score < e.rule.RiichiMinScore {
		return failResult(fmt.Errorf("%w: cannot declare riichi", ErrRuleViolation))
	}
	if h.CountKind(tile) == 0 {
		return failResult(fmt.Errorf("%w: %s not in hand", ErrIllegalTile, tile.Name()))
	}
	if !slices.ContainsFunc(e.RiichiDiscards(seat), func(t Tile) bool { return t.Kind() == tile.Kind() }) {
		return failResult(fmt.Errorf("%w: discard would break tenpai", ErrRuleViolation))
	}

	h.DeclareRiichi(e.turnNumber, e.noInterruptions() && len(h.Discards()) == 0)
	p.AddScore(-e.rule.RiichiCost)
	e.riichiSticks++
	logger.Log.Infof("game %s: seat %d declared riichi", e.ID, seat)

	res := e.executeDiscard(seat, tile, true)
	if !res.Success {
		return res
	}
	return okResult(p.name + " declared riichi and discarded " + e.lastDiscard.Name())
}

func (e *Engine) canTsumo(seat int32) bool {
	h := e.players[seat].hand
	if h.TileCount()%3 != 2 {
		return false
	}
	return huCore.IsComplete(h.Counts(), len(h.Melds()))
}

func (e *Engine) executeTsumo(seat int32) *ActionResult {
	if seat != e.curSeat || e.pendingChankan != nil {
		return failResult(fmt.Errorf("%w: not your turn", ErrInvalidAction))
	}
	if !e.canTsumo(seat) {
		return failResult(fmt.Errorf("%w: hand is not complete", ErrInvalidAction))
	}
	p := e.players[seat]
	winTile := p.hand.LastDraw()
	if !winTile.IsValid() {
		return failResult(fmt.Errorf("%w: no drawn tile", ErrInvalidAction))
	}

	ctx := NewWinContext(p.hand, winTile, true, e.roundWind)
	ctx.Rinshan = e.lastKanDraw
	ctx.Haitei = e.wall.GetRestCount() == 0
	if e.noInterruptions() && len(p.hand.Discards()) == 0 {
		ctx.Tenhou = p.isDealer
		ctx.Chiihou = !p.isDealer
	}
	e.attachDora(ctx, p.hand)

	yaku := CheckAllYaku(ctx)
	if !HasRealYaku(yaku) {
		return failResult(fmt.Errorf("%w: tsumo without yaku", ErrNoYaku))
	}
	score := CalculateScore(ctx, yaku, p.isDealer, e.honba, e.rule)
	e.applyTsumoPayments(seat, score)
	e.finishWin(seat, SeatNull, score)
	logger.Log.Infof("game %s: seat %d tsumo for %d (%s)", e.ID, seat, score.Total, yakuNames(yaku))
	return &ActionResult{
		Success:   true,
		Message:   p.name + " won by tsumo",
		GameEnded: true,
		Winner:    seat,
		Score:     score.Total,
		Yaku:      yaku,
	}
}

func (e *Engine) executeRon(seat int32) *ActionResult {
	p := e.players[seat]
	var winTile Tile
	var payer int32
	chankan := e.pendingChankan != nil

	if chankan {
		if !e.pendingChankan.waiters[seat] {
			return failResult(fmt.Errorf("%w: cannot rob this kan", ErrInvalidAction))
		}
		winTile = e.pendingChankan.tile
		payer = e.pendingChankan.seat
	} else {
		if !e.lastDiscard.IsValid() || seat == e.lastDiscardSeat {
			return failResult(fmt.Errorf("%w: nothing to ron", ErrInvalidAction))
		}
		if !p.hand.CanRon(e.lastDiscard) {
			return failResult(fmt.Errorf("%w: cannot call ron", ErrInvalidAction))
		}
		winTile = e.lastDiscard
		payer = e.lastDiscardSeat
	}

	ctx := NewWinContext(p.hand, winTile, false, e.roundWind)
	ctx.Chankan = chankan
	ctx.Houtei = !chankan && e.wall.GetRestCount() == 0
	e.attachDora(ctx, p.hand)

	yaku := CheckAllYaku(ctx)
	if !HasRealYaku(yaku) {
		return failResult(fmt.Errorf("%w: ron without yaku", ErrNoYaku))
	}
	score := CalculateScore(ctx, yaku, p.isDealer, e.honba, e.rule)
	e.players[payer].AddScore(-score.Total)
	p.AddScore(score.Total)
	e.pendingChankan = nil
	e.finishWin(seat, payer, score)
	logger.Log.Infof("game %s: seat %d ron seat %d for %d (%s)", e.ID, seat, payer, score.Total, yakuNames(yaku))
	return &ActionResult{
		Success:   true,
		Message:   p.name + " won by ron",
		GameEnded: true,
		Winner:    seat,
		Score:     score.Total,
		Yaku:      yaku,
	}
}

func (e *Engine) executePon(seat int32) *ActionResult {
	if e.pendingChankan != nil || !e.lastDiscard.IsValid() || seat == e.lastDiscardSeat {
		return failResult(fmt.Errorf("%w: nothing to pon", ErrInvalidAction))
	}
	h := e.players[seat].hand
	if h.IsRiichi() {
		return failResult(fmt.Errorf("%w: riichi hand cannot call", ErrRuleViolation))
	}
	if !h.Pon(e.lastDiscard, e.lastDiscardSeat) {
		return failResult(fmt.Errorf("%w: cannot call pon", ErrInvalidAction))
	}
	e.afterCall(seat)
	return okResult(e.players[seat].name + " called pon")
}

func (e *Engine) executeChii(seat int32, tiles [2]Tile) *ActionResult {
	if e.pendingChankan != nil || !e.lastDiscard.IsValid() {
		return failResult(fmt.Errorf("%w: nothing to chii", ErrInvalidAction))
	}
	if GetNextSeat(e.lastDiscardSeat, 1, NP4) != seat {
		return failResult(fmt.Errorf("%w: can only chii from the left player", ErrRuleViolation))
	}
	h := e.players[seat].hand
	if h.IsRiichi() {
		return failResult(fmt.Errorf("%w: riichi hand cannot call", ErrRuleViolation))
	}
	if !isRunWith(e.lastDiscard, tiles) {
		return failResult(fmt.Errorf("%w: tiles do not form a run", ErrIllegalTile))
	}
	if !h.Chow(e.lastDiscard, tiles, e.lastDiscardSeat) {
		return failResult(fmt.Errorf("%w: tiles not in hand", ErrIllegalTile))
	}
	e.afterCall(seat)
	return okResult(e.players[seat].name + " called chii")
}

// isRunWith 弃牌与两张手牌是否构成顺子
func isRunWith(called Tile, tiles [2]Tile) bool {
	kinds := []int{called.Kind34(), tiles[0].Kind34(), tiles[1].Kind34()}
	slices.Sort(kinds)
	if kinds[0] < 0 || kinds[2] >= 27 {
		return false
	}
	return kinds[1] == kinds[0]+1 && kinds[2] == kinds[0]+2 && kinds[0]/9 == kinds[2]/9
}

func (e *Engine) executeKon(seat int32, tile Tile) *ActionResult {
	if e.pendingChankan != nil {
		return failResult(fmt.Errorf("%w: chankan window is open", ErrInvalidAction))
	}
	if e.konCount() >= MaxKonCount {
		return failResult(fmt.Errorf("%w: kan limit reached", ErrRuleViolation))
	}
	p := e.players[seat]
	h := p.hand

	if e.lastDiscard.IsValid() {
		// 大明杠
		if seat == e.lastDiscardSeat {
			return failResult(fmt.Errorf("%w: cannot kan own discard", ErrInvalidAction))
		}
		if h.IsRiichi() {
			return failResult(fmt.Errorf("%w: riichi hand cannot call", ErrRuleViolation))
		}
		if !h.ZhiKon(e.lastDiscard, e.lastDiscardSeat) {
			return failResult(fmt.Errorf("%w: cannot call kan", ErrInvalidAction))
		}
		e.afterCall(seat)
		e.completeKon(seat)
		return okResult(p.name + " called kan")
	}

	if seat != e.curSeat {
		return failResult(fmt.Errorf("%w: not your turn", ErrInvalidAction))
	}
	if h.CountKind(tile) >= 4 {
		// 暗杠
		if h.IsRiichi() && !h.RiichiKonAllowed(tile) {
			return failResult(fmt.Errorf("%w: kan would change the wait", ErrRuleViolation))
		}
		h.AnKon(tile, seat)
		e.clearAllIppatsu()
		e.completeKon(seat)
		return okResult(p.name + " declared closed kan of " + tile.Kind().Name())
	}

	if meld := h.PonMeld(tile); meld != nil && h.CountKind(tile) >= 1 {
		// 加杠：先开抢杠窗口
		if h.IsRiichi() {
			return failResult(fmt.Errorf("%w: riichi hand cannot call", ErrRuleViolation))
		}
		taken, _ := h.TakeTile(tile)
		waiters := make(map[int32]bool)
		for _, other := range e.players {
			if other.seat != seat && other.hand.CanRon(taken) {
				waiters[other.seat] = true
			}
		}
		if len(waiters) > 0 {
			e.pendingChankan = &chankanState{tile: taken, seat: seat, meld: meld, waiters: waiters}
			logger.Log.Infof("game %s: seat %d added kan of %s, chankan window open", e.ID, seat, taken.Kind().Name())
			return &ActionResult{
				Success:        true,
				Message:        p.name + " declared added kan",
				Winner:         SeatNull,
				PendingChankan: true,
			}
		}
		meld.UpgradeToKon(taken)
		e.clearAllIppatsu()
		e.completeKon(seat)
		return okResult(p.name + " declared added kan of " + taken.Kind().Name())
	}

	return failResult(fmt.Errorf("%w: no kan available for %s", ErrIllegalTile, tile.Name()))
}

// completeKon 杠成立：新宝牌指示与岭上补牌
func (e *Engine) completeKon(seat int32) {
	e.wall.AddDoraIndicator()
	tile, err := e.wall.DrawReplacement()
	if err != nil {
		logrus.Errorf("game %s: replacement draw failed: %v", e.ID, err)
		return
	}
	e.players[seat].hand.PutTile(tile)
	e.curSeat = seat
	e.lastKanDraw = true
}

// completePendingKon 抢杠窗口内全员过牌，杠成立
func (e *Engine) completePendingKon() {
	ck := e.pendingChankan
	e.pendingChankan = nil
	ck.meld.UpgradeToKon(ck.tile)
	e.clearAllIppatsu()
	e.completeKon(ck.seat)
}

func (e *Engine) executePass(seat int32) *ActionResult {
	h := e.players[seat].hand
	if e.pendingChankan != nil {
		if e.pendingChankan.waiters[seat] {
			delete(e.pendingChankan.waiters, seat)
			h.SetTempFuriten()
			if len(e.pendingChankan.waiters) == 0 {
				e.completePendingKon()
			}
		}
		return okResult("passed")
	}
	// 见逃：临时振听到下次自家摸牌为止
	if e.lastDiscard.IsValid() && seat != e.lastDiscardSeat && h.CanRon(e.lastDiscard) {
		h.SetTempFuriten()
	}
	return okResult("passed")
}

// AdvanceTurn 无人鸣牌时轮转到下家并摸牌；牌墙摸完则流局
func (e *Engine) AdvanceTurn() *ActionResult {
	if e.phase != PhasePlaying {
		return failResult(fmt.Errorf("%w: round is not in progress", ErrInvalidAction))
	}
	if e.pendingChankan != nil {
		return failResult(fmt.Errorf("%w: chankan window is open", ErrInvalidAction))
	}
	if e.players[e.curSeat].hand.TileCount()%3 == 2 {
		return failResult(fmt.Errorf("%w: current player has not discarded", ErrInvalidAction))
	}

	e.lastDiscard = TileNull
	e.lastDiscardSeat = SeatNull
	e.curSeat = GetNextSeat(e.curSeat, 1, NP4)
	e.turnNumber++

	tile, err := e.wall.DrawTile()
	if err != nil {
		return e.handleExhaustiveDraw()
	}
	e.players[e.curSeat].hand.PutTile(tile)
	return okResult(e.players[e.curSeat].name + " drew a tile")
}

// handleExhaustiveDraw 荒牌流局：罚符在听牌与未听牌之间分摊
func (e *Engine) handleExhaustiveDraw() *ActionResult {
	e.phase = PhaseEnded
	var tenpai []int32
	for _, p := range e.players {
		if p.hand.IsTenpai() {
			tenpai = append(tenpai, p.seat)
		}
	}
	if len(tenpai) > 0 && len(tenpai) < NP4 {
		gain := e.rule.TenpaiPot / int32(len(tenpai))
		loss := e.rule.TenpaiPot / int32(NP4-len(tenpai))
		for _, p := range e.players {
			if slices.Contains(tenpai, p.seat) {
				p.AddScore(gain)
			} else {
				p.AddScore(-loss)
			}
		}
	}
	e.result = &RoundResult{Winner: SeatNull, Loser: SeatNull, TenpaiSeats: tenpai, Drawn: true}
	logger.Log.Infof("game %s: exhaustive draw, tenpai seats %v", e.ID, tenpai)
	return &ActionResult{
		Success:     true,
		Message:     "exhaustive draw",
		GameEnded:   true,
		Winner:      SeatNull,
		TenpaiSeats: tenpai,
	}
}

func (e *Engine) applyTsumoPayments(seat int32, score *ScoreResult) {
	winner := e.players[seat]
	if winner.isDealer {
		pay := score.Payments["all"]
		for _, p := range e.players {
			if p.seat != seat {
				p.AddScore(-pay)
				winner.AddScore(pay)
			}
		}
		return
	}
	for _, p := range e.players {
		if p.seat == seat {
			continue
		}
		pay := score.Payments["non_dealer"]
		if p.isDealer {
			pay = score.Payments["dealer"]
		}
		p.AddScore(-pay)
		winner.AddScore(pay)
	}
}

// finishWin 供托归和牌者，结束本局
func (e *Engine) finishWin(winner, loser int32, score *ScoreResult) {
	e.players[winner].AddScore(e.riichiSticks * e.rule.RiichiCost)
	e.riichiSticks = 0
	e.phase = PhaseEnded
	e.result = &RoundResult{Winner: winner, Loser: loser, Score: score}
}

// AdvanceRound 连庄与轮庄，南四局后终局。返回对局是否结束
func (e *Engine) AdvanceRound() bool {
	if e.phase != PhaseEnded || e.result == nil {
		return e.IsGameOver()
	}
	dealerWon := e.result.Winner == e.dealer
	dealerTenpai := e.result.Drawn && slices.Contains(e.result.TenpaiSeats, e.dealer)

	if dealerWon || e.result.Drawn {
		e.honba++
	} else {
		e.honba = 0
	}

	// 连庄时局数不变，轮庄才前进；入南风重新从一局数起
	if !dealerWon && !dealerTenpai {
		e.dealer = GetNextSeat(e.dealer, 1, NP4)
		for _, p := range e.players {
			p.isDealer = p.seat == e.dealer
			p.hand.SetSeatWind(WindTiles[(p.seat-e.dealer+NP4)%NP4])
		}
		if e.dealer == 0 {
			if e.roundWind.Kind() == TileEast {
				e.roundWind = TileSouth
				e.roundNumber = 1
			} else {
				e.finished = true
				return true
			}
		} else {
			e.roundNumber++
		}
	}
	return e.IsGameOver()
}

// StartNewRound 开始新的一局
func (e *Engine) StartNewRound() {
	if e.IsGameOver() {
		return
	}
	for _, p := range e.players {
		p.ResetHand(WindTiles[(p.seat-e.dealer+NP4)%NP4])
	}
	e.startRound()
}

// IsGameOver 南风局打完或有人被飞
func (e *Engine) IsGameOver() bool {
	if e.finished {
		return true
	}
	for _, p := range e.players {
		if p.score < 0 {
			return true
		}
	}
	return false
}

func (e *Engine) afterCall(seat int32) {
	e.curSeat = seat
	e.lastDiscard = TileNull
	e.lastDiscardSeat = SeatNull
	e.lastKanDraw = false
	e.clearAllIppatsu()
}

func (e *Engine) clearAllIppatsu() {
	for _, p := range e.players {
		p.hand.ClearIppatsu()
	}
}

func (e *Engine) konCount() int {
	n := 0
	for _, p := range e.players {
		for _, m := range p.hand.Melds() {
			if m.IsKon() {
				n++
			}
		}
	}
	return n
}

func (e *Engine) hasSelfKon(seat int32) bool {
	if e.konCount() >= MaxKonCount {
		return false
	}
	h := e.players[seat].hand
	if h.IsRiichi() {
		for _, t := range h.ClosedKonTiles() {
			if h.RiichiKonAllowed(t) {
				return true
			}
		}
		return false
	}
	return len(h.ClosedKonTiles()) > 0 || len(h.UpgradeKonTiles()) > 0
}

// noInterruptions 首巡且无任何副露，天和/地和的前置条件
func (e *Engine) noInterruptions() bool {
	if e.turnNumber >= NP4 {
		return false
	}
	for _, p := range e.players {
		if len(p.hand.Melds()) > 0 {
			return false
		}
	}
	return true
}

func (e *Engine) attachDora(ctx *WinContext, h *Hand) {
	ctx.DoraTiles = e.wall.DoraTiles()
	if h.IsRiichi() {
		ctx.UraDoraTiles = e.wall.UraDoraTiles()
	}
}

func yakuNames(yaku []Yaku) string {
	names := make([]string, len(yaku))
	for i, y := range yaku {
		names[i] = y.Name
	}
	return fmt.Sprintf("%v", names)
}
