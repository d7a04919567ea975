package domain

import (
	"errors"
	"fmt"
)

// BoardTextLen is the wire length of a puzzle: 81 digits, row-major,
// '0' meaning empty.
const BoardTextLen = 81

var (
	// ErrInvalidLength rejects wire input that is not exactly 81 characters.
	ErrInvalidLength = errors.New("puzzle must be exactly 81 characters")
	// ErrUnsolvable marks a well-formed board with no valid completion.
	ErrUnsolvable = errors.New("puzzle has no solution")
	// ErrInvalidBound rejects a non-positive solution-count bound.
	ErrInvalidBound = errors.New("solution bound must be positive")
)

// Parse decodes an 81-character row-major digit string. Any character
// outside '0'–'9' is silently coerced to empty; only a wrong length fails.
func Parse(text string) (Board, error) {
	var b Board
	if len(text) != BoardTextLen {
		return b, fmt.Errorf("%w: got %d", ErrInvalidLength, len(text))
	}
	for i := 0; i < BoardTextLen; i++ {
		if ch := text[i]; ch >= '0' && ch <= '9' {
			b.Values[i/9][i%9] = ch - '0'
		}
	}
	return b, nil
}

// String encodes the board as 81 digits, rows top to bottom, each row left
// to right. Round-trips with Parse.
func (b Board) String() string {
	buf := make([]byte, BoardTextLen)
	for i := range buf {
		buf[i] = '0' + b.Values[i/9][i%9]
	}
	return string(buf)
}
