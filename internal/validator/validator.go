package validator

import (
	"context"

	"github.com/ddabb/sudoku-mcp/internal/domain"
)

// FastValidator checks every row, column, and 3×3 box for repeated digits.
// It is the single source of truth for "is this grid consistent" and is
// orthogonal to solvability.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the board is consistent, along with every cell
// that duplicates an earlier digit in its group. Empty cells never count.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	group := func(cells *[9]domain.CellCoord) {
		seen := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conflicts = append(conflicts, cc)
			}
			seen |= bit
		}
	}

	var cells [9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			cells[j] = domain.CellCoord{Row: i, Col: j}
		}
		group(&cells)
		for j := 0; j < 9; j++ {
			cells[j] = domain.CellCoord{Row: j, Col: i}
		}
		group(&cells)
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			k := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					cells[k] = domain.CellCoord{Row: br + dr, Col: bc + dc}
					k++
				}
			}
			group(&cells)
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
