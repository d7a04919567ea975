package domain

// Difficulty labels a puzzle by how sparse it is.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "expert"
	}
}

// Classify grades a board by empty-cell count alone; no search involved.
func Classify(emptyCells int) Difficulty {
	switch {
	case emptyCells < 35:
		return Easy
	case emptyCells < 45:
		return Medium
	case emptyCells < 50:
		return Hard
	default:
		return Expert
	}
}

// Level is the requested generation difficulty, 1 (easiest) to 5.
type Level int

const (
	MinLevel     Level = 1
	MaxLevel     Level = 5
	DefaultLevel Level = 3
)

// Clamp forces the level into the supported 1–5 range.
func (l Level) Clamp() Level {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

// CellsToRemove maps a level to its target number of empty cells.
func (l Level) CellsToRemove() int {
	return [...]int{30, 40, 45, 50, 55}[l.Clamp()-1]
}
