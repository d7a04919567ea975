package hint

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/ports"
)

// Revealer derives hints by solving the board and revealing the solved
// digits of a random selection of its empty cells.
type Revealer struct {
	solver ports.Solver
	rng    *rand.Rand
}

func New(s ports.Solver, rng *rand.Rand) *Revealer {
	return &Revealer{solver: s, rng: rng}
}

// Hint returns up to count reveals for the board's empty cells. The board
// itself is not modified. A board the solver cannot complete yields an
// error rather than an empty list.
func (h *Revealer) Hint(ctx context.Context, b *domain.Board, count int) ([]domain.Hint, error) {
	solved, _, err := h.solver.Solve(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("cannot solve: %w", err)
	}

	empty := b.EmptyCells()
	h.rng.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })
	if count > len(empty) {
		count = len(empty)
	}
	if count < 0 {
		count = 0
	}

	hints := make([]domain.Hint, 0, count)
	for _, cc := range empty[:count] {
		hints = append(hints, domain.Hint{Cell: cc, Digit: solved.Values[cc.Row][cc.Col]})
	}
	return hints, nil
}
