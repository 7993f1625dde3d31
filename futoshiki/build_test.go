package futoshiki_test

import (
	"testing"

	turing "github.com/asphodex/turing-algebra"
	"github.com/asphodex/turing-algebra/futoshiki"
	"github.com/asphodex/turing-algebra/futoshiki/puzzlecfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, m turing.Machine, input string) turing.Status {
	t.Helper()

	m.LoadInput(input)

	var status turing.Status
	for i := 0; i < 200 && status != turing.Accept && status != turing.Reject; i++ {
		status = m.Step()
	}

	return status
}

func TestBuild_PinnedCell(t *testing.T) {
	t.Parallel()

	p := &puzzlecfg.Puzzle{}
	p.Grid[0][0] = 2

	m, err := futoshiki.Build(p, futoshiki.Digits)
	require.NoError(t, err)

	tt := []struct {
		name  string
		input string
		want  turing.Status
	}{
		{"matches the pinned digit", "2111111111111111", turing.Accept},
		{"mismatches the pinned digit", "1111111111111111", turing.Reject},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, run(t, m.Clone(), tc.input))
		})
	}
}

func TestBuild_LessClue(t *testing.T) {
	t.Parallel()

	p := &puzzlecfg.Puzzle{
		Clues: []puzzlecfg.Clue{
			{FromRow: 0, FromCol: 0, ToRow: 0, ToCol: 1, Rel: puzzlecfg.Less},
		},
	}

	m, err := futoshiki.Build(p, futoshiki.Digits)
	require.NoError(t, err)

	tt := []struct {
		name  string
		input string
		want  turing.Status
	}{
		{"clue holds", "1211111111111111", turing.Accept},
		{"clue violated", "3211111111111111", turing.Reject},
		{"clue tight", "4311111111111111", turing.Reject},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, run(t, m.Clone(), tc.input))
		})
	}
}

func TestBuild_GreaterClue_NonAdjacentGap(t *testing.T) {
	t.Parallel()

	// A vertical clue: cell (0,0) and cell (1,0) are four tape positions
	// apart in the row-major layout.
	p := &puzzlecfg.Puzzle{
		Clues: []puzzlecfg.Clue{
			{FromRow: 0, FromCol: 0, ToRow: 1, ToCol: 0, Rel: puzzlecfg.Greater},
		},
	}

	m, err := futoshiki.Build(p, futoshiki.Digits)
	require.NoError(t, err)

	tt := []struct {
		name  string
		input string
		want  turing.Status
	}{
		{"clue holds", "3111211111111111", turing.Accept},
		{"clue violated", "1111311111111111", turing.Reject},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, run(t, m.Clone(), tc.input))
		})
	}
}

func TestBuild_FormatReject_WrongSymbol(t *testing.T) {
	t.Parallel()

	p := &puzzlecfg.Puzzle{}

	m, err := futoshiki.Build(p, futoshiki.Digits)
	require.NoError(t, err)

	// A '5' is outside the digit alphabet, so the format stage has no
	// transition for it and the run rejects.
	assert.Equal(t, turing.Reject, run(t, m.Clone(), "5111111111111111"))
}

func TestBuild_ClueDirectionValidation(t *testing.T) {
	t.Parallel()

	p := &puzzlecfg.Puzzle{
		Clues: []puzzlecfg.Clue{
			{FromRow: 0, FromCol: 1, ToRow: 0, ToCol: 0, Rel: puzzlecfg.Less},
		},
	}

	_, err := futoshiki.Build(p, futoshiki.Digits)
	require.Error(t, err)
}
