package hint

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/solver"
)

const (
	classic  = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestHintRevealsSolvedDigits(t *testing.T) {
	b, err := domain.Parse(classic)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want, _ := domain.Parse(solution)

	h := New(solver.NewBacktrackingSolver(), rand.New(rand.NewSource(5)))
	hints, err := h.Hint(context.Background(), &b, 3)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if len(hints) != 3 {
		t.Fatalf("got %d hints, want 3", len(hints))
	}
	for _, hh := range hints {
		if b.Values[hh.Cell.Row][hh.Cell.Col] != 0 {
			t.Fatalf("hint targets filled cell (%d,%d)", hh.Cell.Row, hh.Cell.Col)
		}
		if got := want.Values[hh.Cell.Row][hh.Cell.Col]; hh.Digit != got {
			t.Fatalf("hint at (%d,%d) = %d, solution has %d", hh.Cell.Row, hh.Cell.Col, hh.Digit, got)
		}
	}
	if b.String() != classic {
		t.Fatal("Hint mutated its input board")
	}
}

func TestHintCapsAtEmptyCellCount(t *testing.T) {
	b, _ := domain.Parse(solution)
	b.Values[0][0] = 0
	b.Values[8][8] = 0

	h := New(solver.NewBacktrackingSolver(), rand.New(rand.NewSource(5)))
	hints, err := h.Hint(context.Background(), &b, 5)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if len(hints) != 2 {
		t.Fatalf("got %d hints, want 2 (only 2 empty cells)", len(hints))
	}
}

func TestHintOnUnsolvableBoard(t *testing.T) {
	b, _ := domain.Parse("123456780" + "000000009" + "000000000000000000000000000000000000000000000000000000000000000")
	h := New(solver.NewBacktrackingSolver(), rand.New(rand.NewSource(5)))
	_, err := h.Hint(context.Background(), &b, 1)
	if !errors.Is(err, domain.ErrUnsolvable) {
		t.Fatalf("got %v, want ErrUnsolvable", err)
	}
}
