package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func newHand(tiles string) *mahjong.Hand {
	h := mahjong.NewHand(mahjong.TileEast)
	h.PutTiles(mahjong.ParseTiles(tiles))
	return h
}

func Test_HandFuriten(t *testing.T) {
	// 听1sou/4sou
	h := newHand("2man,3man,4man,6man,7man,8man,7pin,8pin,9pin,2sou,3sou,5pin,5pin")
	win := mahjong.ParseTile("4sou")
	if !h.CanRon(win) {
		t.Fatal("expected ron on 4sou")
	}

	// 自家舍过1sou即振听，4sou也不能荣和
	h.PutTile(mahjong.ParseTile("1sou"))
	h.Discard(mahjong.ParseTile("1sou"))
	h.UpdateFuriten()
	if !h.IsFuriten() {
		t.Fatal("expected furiten after discarding a winning tile")
	}
	if h.CanRon(win) {
		t.Error("furiten hand must not ron")
	}
	if !h.CompleteWith(win) {
		t.Error("hand shape is still complete with 4sou")
	}
}

func Test_HandTempFuriten(t *testing.T) {
	h := newHand("2man,3man,4man,6man,7man,8man,7pin,8pin,9pin,2sou,3sou,5pin,5pin")
	win := mahjong.ParseTile("1sou")

	h.SetTempFuriten()
	if h.CanRon(win) {
		t.Error("temporary furiten must block ron")
	}
	// 自家摸牌解除，打出恢复13张后才可荣和
	h.PutTile(mahjong.ParseTile("9man"))
	if h.IsTempFuriten() {
		t.Error("temporary furiten should clear on next draw")
	}
	h.Discard(mahjong.ParseTile("9man"))
	if !h.CanRon(win) {
		t.Error("ron should be available again after the draw")
	}
}

func Test_ChowOptions(t *testing.T) {
	type chowCase struct {
		tiles string
		tile  string
		want  int
	}
	testCases := []chowCase{
		{"4man,6man,7man,1pin,1pin", "5man", 2},
		{"3pin,4pin,5pin,6pin,7pin", "5pin", 3},
		{"1sou,2sou,9pin,9pin,9pin", "3sou", 1},
		{"1man,1man,2pin,east,east", "east", 0},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			h := newHand(tc.tiles)
			got := h.ChowOptions(mahjong.ParseTile(tc.tile))
			if len(got) != tc.want {
				t.Errorf("ChowOptions(%s) = %d options, want %d", tc.tile, len(got), tc.want)
			}
		})
	}
}

func Test_HandCalls(t *testing.T) {
	h := newHand("5pin,5pin,5pin,2sou,3sou,4sou,east,east")
	tile := mahjong.ParseTile("east")

	if !h.CanPon(tile) {
		t.Fatal("expected pon on east")
	}
	if h.CanZhiKon(tile) {
		t.Error("two copies cannot open kan")
	}
	if !h.Pon(tile, 2) {
		t.Fatal("pon failed")
	}
	if h.IsClosed() {
		t.Error("pon opens the hand")
	}
	if h.TileCount() != 6 {
		t.Errorf("TileCount = %d, want 6", h.TileCount())
	}

	// 碰副露加第4张可加杠
	h.PutTile(tile)
	kans := h.UpgradeKonTiles()
	if len(kans) != 1 || kans[0].Kind() != tile.Kind() {
		t.Fatalf("UpgradeKonTiles = %v", mahjong.TilesName(kans))
	}
	meld := h.PonMeld(tile)
	if meld == nil {
		t.Fatal("expected pon meld")
	}
	taken, ok := h.TakeTile(tile)
	if !ok {
		t.Fatal("fourth tile not in hand")
	}
	meld.UpgradeToKon(taken)
	if !meld.IsKon() || meld.KonType() != mahjong.KonTypeBu {
		t.Errorf("meld type = %v, want added kan", meld.Type)
	}
}

func Test_ClosedKanKeepsMenzen(t *testing.T) {
	h := newHand("5pin,5pin,5pin,5pin,2sou,3sou,4sou,east,east")
	if !h.AnKon(mahjong.ParseTile("5pin"), 0) {
		t.Fatal("closed kan failed")
	}
	if !h.IsClosed() {
		t.Error("closed kan must keep the hand concealed")
	}
	if h.Melds()[0].IsOpen() {
		t.Error("closed kan is not an open meld")
	}
}

func Test_RiichiKonAllowed(t *testing.T) {
	// 暗杠东不改变1man/4man两面听
	h := newHand("east,east,east,2man,3man,4pin,5pin,6pin,7sou,8sou,9sou,5sou,5sou")
	h.DeclareRiichi(3, false)
	h.PutTile(mahjong.ParseTile("east"))
	if !h.RiichiKonAllowed(mahjong.ParseTile("east")) {
		t.Error("kan keeping the wait should be allowed")
	}

	// 111m搭配EE时东也是和牌（东刻+1man雀头），杠1man会砍掉这张听牌
	h2 := newHand("1man,1man,1man,2man,3man,4pin,5pin,6pin,7sou,8sou,9sou,east,east")
	h2.DeclareRiichi(3, false)
	h2.PutTile(mahjong.ParseTile("1man"))
	if h2.RiichiKonAllowed(mahjong.ParseTile("1man")) {
		t.Error("kan shrinking the wait must be rejected")
	}

	// 暗杠5man把顺子拆散，听牌消失
	h3 := newHand("3man,4man,5man,5man,5man,6man,7man,2pin,3pin,4pin,east,east,east")
	h3.DeclareRiichi(3, false)
	h3.PutTile(mahjong.ParseTile("5man"))
	if h3.RiichiKonAllowed(mahjong.ParseTile("5man")) {
		t.Error("kan breaking the wait must be rejected")
	}
}

func Test_IppatsuWindow(t *testing.T) {
	h := newHand("2man,3man,4man,6man,7man,8man,7pin,8pin,9pin,2sou,3sou,5pin,5pin")
	h.PutTile(mahjong.ParseTile("9sou"))
	h.DeclareRiichi(2, false)

	// 宣言牌打出后一发仍然存续
	h.Discard(mahjong.ParseTile("9sou"))
	if !h.Ippatsu() {
		t.Fatal("ippatsu should survive the riichi discard")
	}
	// 下一次打牌即过巡
	h.PutTile(mahjong.ParseTile("9sou"))
	h.Discard(mahjong.ParseTile("9sou"))
	if h.Ippatsu() {
		t.Error("ippatsu must end after the following discard")
	}
}
