package mahjong

// Player 一个座位上的玩家
type Player struct {
	seat     int32
	name     string
	score    int32
	isDealer bool
	hand     *Hand
}

func NewPlayer(seat int32, name string, seatWind Tile, score int32) *Player {
	return &Player{
		seat:  seat,
		name:  name,
		score: score,
		hand:  NewHand(seatWind),
	}
}

func (p *Player) Seat() int32 {
	return p.seat
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Score() int32 {
	return p.score
}

func (p *Player) AddScore(delta int32) {
	p.score += delta
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) IsDealer() bool {
	return p.isDealer
}

// ResetHand 新的一局：换手牌，自风可能轮转
func (p *Player) ResetHand(seatWind Tile) {
	p.hand = NewHand(seatWind)
}
