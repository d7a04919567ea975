package solver

import (
	"context"
	"time"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/ports"
)

// Solve returns the first solution found, trying digits 1–9 in ascending
// order at each empty cell. The input board is not modified. Givens are not
// re-validated here; a board whose pre-filled cells already conflict should
// be caught by the validator beforehand.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	solved := false
	search(ctx, &grid, nil, func() bool {
		solved = true
		return true
	}, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrUnsolvable
	}
	return &domain.Board{Values: grid}, st, nil
}
