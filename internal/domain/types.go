package domain

// Board is the 9×9 grid under construction or analysis. Cell values are
// 0–9 where 0 marks an empty cell. Boards are plain values; copy by
// assignment.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// CellCoord identifies a cell on the board, 0-based.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint reveals the solved digit for one cell.
type Hint struct {
	Cell  CellCoord `json:"cell"`
	Digit uint8     `json:"digit"`
}

// Puzzle is a generated board together with its generation outcome. Removed
// may fall short of the level's target when uniqueness blocked further
// removals.
type Puzzle struct {
	Board   Board `json:"board"`
	Level   Level `json:"level"`
	Removed int   `json:"removed"`
}

// FindFirstEmpty returns the first empty cell scanning rows top to bottom,
// cells left to right. The deterministic searches rely on this exact order.
func (b *Board) FindFirstEmpty() (CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return CellCoord{}, false
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() []CellCoord {
	cells := make([]CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				cells = append(cells, CellCoord{Row: r, Col: c})
			}
		}
	}
	return cells
}
