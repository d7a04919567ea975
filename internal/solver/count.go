package solver

import (
	"context"
	"time"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/ports"
)

// CountSolutions counts distinct completions of b, stopping as soon as
// maxCount have been seen. The result is in [0, maxCount]; a result equal
// to maxCount means "maxCount or more". The bound is what keeps search time
// finite on sparse boards, so maxCount must be at least 1.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b *domain.Board, maxCount int) (int, ports.Stats, error) {
	start := time.Now()
	if maxCount < 1 {
		return 0, ports.Stats{}, domain.ErrInvalidBound
	}
	grid := b.Values
	nodes := 0
	count := 0
	search(ctx, &grid, nil, func() bool {
		count++
		return count >= maxCount
	}, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
