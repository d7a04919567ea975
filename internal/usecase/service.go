package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ddabb/sudoku-mcp/internal/domain"
	"github.com/ddabb/sudoku-mcp/internal/ports"
)

// Service exposes the engine's operations over the 81-character wire
// format: parse, delegate to a port, serialize.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// MaxReportedSolutions bounds the ambiguity count attached to a solve; a
// result equal to it means "that many or more".
const MaxReportedSolutions = 3

// GenerateResult is a generated puzzle in wire form.
type GenerateResult struct {
	Puzzle     string            `json:"puzzle"`
	Level      domain.Level      `json:"level"`
	Removed    int               `json:"removed"`
	Difficulty domain.Difficulty `json:"difficulty"`
}

func (u *Service) Generate(ctx context.Context, level int) (GenerateResult, error) {
	if u.Generator == nil {
		return GenerateResult{}, errNotConfigured
	}
	p, _, err := u.Generator.Generate(ctx, domain.Level(level))
	if err != nil {
		return GenerateResult{}, err
	}
	return GenerateResult{
		Puzzle:     p.Board.String(),
		Level:      p.Level,
		Removed:    p.Removed,
		Difficulty: domain.Classify(p.Board.EmptyCount()),
	}, nil
}

// SolveResult carries the reference solution and a bounded solution count.
// Solutions greater than one means the puzzle is ambiguous but solvable;
// the reference solution is still valid.
type SolveResult struct {
	Solution  string `json:"solution"`
	Solutions int    `json:"solutions"`
}

// Solve rejects a board whose givens already conflict before searching;
// the search alone is not guaranteed to notice such a board.
func (u *Service) Solve(ctx context.Context, puzzle string) (SolveResult, error) {
	if u.Solver == nil || u.Validator == nil {
		return SolveResult{}, errNotConfigured
	}
	b, err := domain.Parse(puzzle)
	if err != nil {
		return SolveResult{}, err
	}
	ok, conflicts, err := u.Validator.Validate(ctx, &b)
	if err != nil {
		return SolveResult{}, err
	}
	if !ok {
		return SolveResult{}, fmt.Errorf("%w: %d conflicting givens", domain.ErrUnsolvable, len(conflicts))
	}
	solved, _, err := u.Solver.Solve(ctx, &b)
	if err != nil {
		return SolveResult{}, err
	}
	n, _, err := u.Solver.CountSolutions(ctx, &b, MaxReportedSolutions)
	if err != nil {
		return SolveResult{}, err
	}
	return SolveResult{Solution: solved.String(), Solutions: n}, nil
}

func (u *Service) Validate(ctx context.Context, puzzle string) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	b, err := domain.Parse(puzzle)
	if err != nil {
		return false, nil, err
	}
	return u.Validator.Validate(ctx, &b)
}

func (u *Service) CountSolutions(ctx context.Context, puzzle string, maxCount int) (int, error) {
	if u.Solver == nil {
		return 0, errNotConfigured
	}
	b, err := domain.Parse(puzzle)
	if err != nil {
		return 0, err
	}
	n, _, err := u.Solver.CountSolutions(ctx, &b, maxCount)
	return n, err
}

// Reveal is one hint in presentation form: 1-based row and column.
type Reveal struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Digit uint8 `json:"digit"`
}

// HintResult distinguishes an already-complete board from one with reveals.
// Puzzle is the input with the revealed digits applied.
type HintResult struct {
	Complete bool     `json:"complete"`
	Reveals  []Reveal `json:"reveals,omitempty"`
	Puzzle   string   `json:"puzzle"`
}

func (u *Service) Hint(ctx context.Context, puzzle string, hintCount int) (HintResult, error) {
	if u.Hinter == nil {
		return HintResult{}, errNotConfigured
	}
	b, err := domain.Parse(puzzle)
	if err != nil {
		return HintResult{}, err
	}
	if b.EmptyCount() == 0 {
		return HintResult{Complete: true, Puzzle: b.String()}, nil
	}
	hints, err := u.Hinter.Hint(ctx, &b, hintCount)
	if err != nil {
		return HintResult{}, err
	}
	updated := b
	res := HintResult{Reveals: make([]Reveal, 0, len(hints))}
	for _, h := range hints {
		updated.Values[h.Cell.Row][h.Cell.Col] = h.Digit
		res.Reveals = append(res.Reveals, Reveal{Row: h.Cell.Row + 1, Col: h.Cell.Col + 1, Digit: h.Digit})
	}
	res.Puzzle = updated.String()
	return res, nil
}

// ClassifyResult grades a puzzle from its empty-cell count.
type ClassifyResult struct {
	Difficulty domain.Difficulty `json:"difficulty"`
	EmptyCells int               `json:"emptyCells"`
}

func (u *Service) Classify(puzzle string) (ClassifyResult, error) {
	b, err := domain.Parse(puzzle)
	if err != nil {
		return ClassifyResult{}, err
	}
	empty := b.EmptyCount()
	return ClassifyResult{Difficulty: domain.Classify(empty), EmptyCells: empty}, nil
}
