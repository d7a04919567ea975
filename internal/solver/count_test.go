package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ddabb/sudoku-mcp/internal/domain"
)

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	b := &domain.Board{Values: sample}
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	n, _, err := s.CountSolutions(ctx, b, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	if b.Values != sample {
		t.Fatal("CountSolutions mutated its input board")
	}
}

func TestCountSolutionsSaturatesOnEmptyBoard(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, max := range []int{1, 2, 3} {
		var empty domain.Board
		n, _, err := s.CountSolutions(ctx, &empty, max)
		if err != nil {
			t.Fatalf("CountSolutions(max=%d) failed: %v", max, err)
		}
		if n != max {
			t.Fatalf("count = %d, want %d (empty board has many completions)", n, max)
		}
	}
}

func TestCountSolutionsUnsolvableIsZero(t *testing.T) {
	b, _ := domain.Parse("123456780" + "000000009" + "000000000000000000000000000000000000000000000000000000000000000")
	n, _, err := NewBacktrackingSolver().CountSolutions(context.Background(), &b, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
}

func TestCountSolutionsRejectsBadBound(t *testing.T) {
	var b domain.Board
	for _, max := range []int{0, -1} {
		if _, _, err := NewBacktrackingSolver().CountSolutions(context.Background(), &b, max); !errors.Is(err, domain.ErrInvalidBound) {
			t.Fatalf("CountSolutions(max=%d): got %v, want ErrInvalidBound", max, err)
		}
	}
}
