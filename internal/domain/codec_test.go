package domain

import (
	"errors"
	"strings"
	"testing"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseRoundTrip(t *testing.T) {
	b, err := Parse(classic)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.String(); got != classic {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, classic)
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	for _, text := range []string{"", "123", classic[:80], classic + "0"} {
		if _, err := Parse(text); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("Parse(len=%d): got %v, want ErrInvalidLength", len(text), err)
		}
	}
}

func TestParseCoercesNonDigitsToEmpty(t *testing.T) {
	text := strings.Repeat(".", 40) + "5" + strings.Repeat("x", 40)
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.EmptyCount(); got != 80 {
		t.Fatalf("EmptyCount = %d, want 80", got)
	}
	if b.Values[4][4] != 5 {
		t.Fatalf("cell (4,4) = %d, want 5", b.Values[4][4])
	}
}

func TestFindFirstEmptyScanOrder(t *testing.T) {
	b, _ := Parse(classic)
	cc, ok := b.FindFirstEmpty()
	if !ok {
		t.Fatal("expected an empty cell")
	}
	// classic starts "530070000": first zero is row 0, col 2.
	if cc.Row != 0 || cc.Col != 2 {
		t.Fatalf("first empty = (%d,%d), want (0,2)", cc.Row, cc.Col)
	}

	full, _ := Parse(strings.Repeat("1", 81))
	if _, ok := full.FindFirstEmpty(); ok {
		t.Fatal("full board reported an empty cell")
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	b, _ := Parse(classic)
	cells := b.EmptyCells()
	if len(cells) != b.EmptyCount() {
		t.Fatalf("EmptyCells len %d != EmptyCount %d", len(cells), b.EmptyCount())
	}
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if prev.Row*9+prev.Col >= cur.Row*9+cur.Col {
			t.Fatalf("cells out of row-major order at %d: %v then %v", i, prev, cur)
		}
	}
}
