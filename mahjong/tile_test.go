package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func Test_TileNameRoundTrip(t *testing.T) {
	names := []string{
		"1man", "9man", "5pin", "5rpin", "1sou", "5rsou",
		"east", "south", "west", "north", "green", "red", "white",
	}
	for i, name := range names {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			tile := mahjong.ParseTile(name)
			if !tile.IsValid() {
				t.Fatalf("ParseTile(%q) = invalid tile", name)
			}
			if got := tile.Name(); got != name {
				t.Errorf("Name() = %q, want %q", got, name)
			}
		})
	}
}

func Test_ParseTileInvalid(t *testing.T) {
	for i, name := range []string{"", "0man", "10pin", "5rman5", "3rsou", "dragon"} {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			if tile := mahjong.ParseTile(name); tile != mahjong.TileNull {
				t.Errorf("ParseTile(%q) = %v, want TileNull", name, tile)
			}
		})
	}
}

func Test_NextForDora(t *testing.T) {
	type Case struct {
		indicator string
		want      string
	}
	testCases := []Case{
		{"1man", "2man"},
		{"9man", "1man"},
		{"9pin", "1pin"},
		{"9sou", "1sou"},
		{"north", "east"},
		{"east", "south"},
		{"white", "green"},
		{"green", "red"},
		{"red", "white"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			got := mahjong.ParseTile(tc.indicator).NextForDora()
			if got.Name() != tc.want {
				t.Errorf("NextForDora(%s) = %s, want %s", tc.indicator, got.Name(), tc.want)
			}
		})
	}
}

func Test_RedFiveKind(t *testing.T) {
	red := mahjong.ParseTile("5rsou")
	plain := mahjong.ParseTile("5sou")
	if red == plain {
		t.Fatal("red five should differ from the plain tile")
	}
	if !red.IsRed() || plain.IsRed() {
		t.Error("IsRed mismatch")
	}
	if red.Kind() != plain.Kind() {
		t.Errorf("Kind() = %v vs %v, want equal", red.Kind(), plain.Kind())
	}
	if red.Kind34() != plain.Kind34() {
		t.Errorf("Kind34() = %d vs %d, want equal", red.Kind34(), plain.Kind34())
	}
}

func Test_Kind34RoundTrip(t *testing.T) {
	for k := 0; k < mahjong.KindCount; k++ {
		tile := mahjong.TileFromKind34(k)
		if !tile.IsValid() {
			t.Fatalf("TileFromKind34(%d) invalid", k)
		}
		if got := tile.Kind34(); got != k {
			t.Errorf("Kind34(TileFromKind34(%d)) = %d", k, got)
		}
	}
}

func Test_TileClasses(t *testing.T) {
	type Case struct {
		name     string
		terminal bool
		orphan   bool
		simple   bool
		green    bool
	}
	testCases := []Case{
		{"1man", true, true, false, false},
		{"5pin", false, false, true, false},
		{"9sou", true, true, false, false},
		{"2sou", false, false, true, true},
		{"6sou", false, false, true, true},
		{"5sou", false, false, true, false},
		{"east", false, true, false, false},
		{"green", false, true, false, true},
		{"white", false, true, false, false},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			tile := mahjong.ParseTile(tc.name)
			if tile.IsTerminal() != tc.terminal {
				t.Errorf("IsTerminal(%s) = %v", tc.name, tile.IsTerminal())
			}
			if tile.IsOrphan() != tc.orphan {
				t.Errorf("IsOrphan(%s) = %v", tc.name, tile.IsOrphan())
			}
			if tile.IsSimple() != tc.simple {
				t.Errorf("IsSimple(%s) = %v", tc.name, tile.IsSimple())
			}
			if tile.IsGreen() != tc.green {
				t.Errorf("IsGreen(%s) = %v", tc.name, tile.IsGreen())
			}
		})
	}
}
