package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/ports"
)

var errFillFailed = errors.New("fill found no completion of the empty board")

// Fill builds a complete valid grid from scratch, shuffling the candidate
// digits at every cell with rng. An empty board always has a completion, so
// apart from ctx cancellation a failure is an invariant violation.
func (s *BacktrackingSolver) Fill(ctx context.Context, rng *rand.Rand) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	var grid [9][9]uint8
	nodes := 0
	solved := false
	shuffle := func(digits []uint8) {
		rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	}
	search(ctx, &grid, shuffle, func() bool {
		solved = true
		return true
	}, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, errFillFailed
	}
	return &domain.Board{Values: grid}, st, nil
}
