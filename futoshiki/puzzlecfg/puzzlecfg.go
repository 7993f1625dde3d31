// Package puzzlecfg loads a 4x4 Futoshiki puzzle definition: the digits
// already given in the grid, plus a set of inequality clues between
// adjacent cells.
package puzzlecfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Relation is the inequality a Clue asserts between two cells.
type Relation int

const (
	// None asserts no relation; Clue values with this Relation are ignored.
	None Relation = iota
	// Less asserts the From cell's digit is less than the To cell's.
	Less
	// Greater asserts the From cell's digit is greater than the To cell's.
	Greater
)

// Clue is an inequality between two grid cells, identified by row/column.
type Clue struct {
	FromRow int      `yaml:"fromRow"`
	FromCol int      `yaml:"fromCol"`
	ToRow   int      `yaml:"toRow"`
	ToCol   int      `yaml:"toCol"`
	Rel     Relation `yaml:"rel"`
}

// Puzzle is a 4x4 Futoshiki board: Grid holds the given digits (0 = blank),
// and Clues the inequality constraints a candidate solution must satisfy.
type Puzzle struct {
	Grid  [4][4]int `yaml:"grid"`
	Clues []Clue    `yaml:"clues"`
}

// LoadFile reads a Puzzle from a YAML document at path.
func LoadFile(path string) (*Puzzle, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle %q: %w", path, err)
	}

	var p Puzzle
	if err := yaml.Unmarshal(bin, &p); err != nil {
		return nil, fmt.Errorf("parse puzzle %q: %w", path, err)
	}

	return &p, nil
}

// CellIndex returns the flat row-major index of (row, col) in a 4-wide grid.
func CellIndex(row, col int) int {
	return row*4 + col
}
