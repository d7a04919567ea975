// Package render formats puzzles for terminal display. It consumes the
// engine's wire format and is otherwise independent of it.
package render

import (
	"strings"

	"github.com/ddabb/sudoku-mcp/internal/domain"
)

// Table formats a puzzle string as a box-drawing grid with 3×3 band
// separators. Empty cells render as dots.
func Table(puzzle string) (string, error) {
	b, err := domain.Parse(puzzle)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("┌───────┬───────┬───────┐\n")
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("├───────┼───────┼───────┤\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteString("│ ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte('0' + v)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└───────┴───────┴───────┘\n")
	return sb.String(), nil
}
