package solver

import "context"

// BacktrackingSolver is a straightforward recursive solver. One search
// drives solving, solution counting, and the generator's randomized fill;
// call sites differ only in digit ordering and in what happens when the
// grid is complete.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// isSafe reports whether v can be placed at (r,c) without clashing with its
// row, its column, or its 3×3 box. 27 direct comparisons, no candidate
// bookkeeping.
func isSafe(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := r-r%3, c-c%3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty scans rows top to bottom, cells left to right. The scan order
// shapes the search tree, so it must stay identical across Solve,
// CountSolutions, and Fill.
func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// search is the shared depth-first backtracking over grid. order, when
// non-nil, permutes the candidate digits before a cell is tried. complete
// is invoked on every fully filled grid; returning true halts the search,
// and the halt propagates through every active frame so no sibling branch
// is explored afterwards. Recursion depth is bounded by 81.
func search(ctx context.Context, grid *[9][9]uint8, order func([]uint8), complete func() bool, nodes *int) bool {
	if ctx.Err() != nil {
		return true
	}
	r, c, ok := findEmpty(grid)
	if !ok {
		return complete()
	}
	digits := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if order != nil {
		order(digits[:])
	}
	for _, v := range digits {
		*nodes++
		if isSafe(grid, r, c, v) {
			grid[r][c] = v
			if search(ctx, grid, order, complete, nodes) {
				return true
			}
			grid[r][c] = 0
		}
	}
	return false
}
