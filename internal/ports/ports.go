package ports

import (
	"context"
	"math/rand"
	"time"

	"github.com/ddabb/sudoku-mcp/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs the backtracking search in its three guises: first solution,
// bounded solution count, and randomized fill of an empty grid.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	CountSolutions(ctx context.Context, b *domain.Board, maxCount int) (int, Stats, error)
	Fill(ctx context.Context, rng *rand.Rand) (*domain.Board, Stats, error)
}

// Generator creates puzzles with a unique solution at a target level.
type Generator interface {
	Generate(ctx context.Context, level domain.Level) (*domain.Puzzle, Stats, error)
}

// Validator performs the independent row/col/box consistency check.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter reveals solved digits for a selection of empty cells.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, count int) ([]domain.Hint, error)
}
