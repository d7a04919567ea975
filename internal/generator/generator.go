package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/ports"
)

// UniqueGenerator carves puzzles out of a full random grid, keeping only
// removals that preserve a unique solution.
type UniqueGenerator struct {
	solver ports.Solver
	rng    *rand.Rand
}

// New wires a generator that uses the given solver for filling and
// uniqueness checks. The rand source is injected so runs are reproducible
// under a fixed seed.
func New(s ports.Solver, rng *rand.Rand) *UniqueGenerator {
	return &UniqueGenerator{solver: s, rng: rng}
}

// Generate builds a puzzle at the given level, clamped to 1–5. Removal
// visits all 81 cells in random order and clears a cell only if the board
// still has exactly one solution without it; the removed count may fall
// short of the level's target when uniqueness blocks further removals, and
// that is not an error.
func (g *UniqueGenerator) Generate(ctx context.Context, level domain.Level) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	level = level.Clamp()

	full, st, err := g.solver.Fill(ctx, g.rng)
	if err != nil {
		return nil, st, err
	}
	nodes := st.Nodes

	puz := *full
	positions := make([]domain.CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			positions = append(positions, domain.CellCoord{Row: r, Col: c})
		}
	}
	g.rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	target := level.CellsToRemove()
	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		old := puz.Values[pos.Row][pos.Col]
		puz.Values[pos.Row][pos.Col] = 0

		// Count on a copy so a rejected removal cannot disturb the board.
		probe := puz
		n, cst, err := g.solver.CountSolutions(ctx, &probe, 2)
		nodes += cst.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			puz.Values[pos.Row][pos.Col] = old
			continue
		}
		removed++
	}

	p := &domain.Puzzle{Board: puz, Level: level, Removed: removed}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
