package turing_test

import (
	"testing"

	turing "github.com/asphodex/turing-algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_CarriesAlphabetUnaltered(t *testing.T) {
	t.Parallel()

	alphabet := []turing.Symbol{'a', 'b', turing.Blank}
	m := turing.Move(3, turing.Right, alphabet)
	m.LoadInput("ab")

	var statuses []turing.Status
	for i := 0; i < 3; i++ {
		statuses = append(statuses, m.Step())
	}

	assert.Equal(t, []turing.Status{turing.Running, turing.Running, turing.Accept}, statuses)
}

func TestMove_ZeroWidth_InitialIsAccept(t *testing.T) {
	t.Parallel()

	m := turing.Move(0, turing.Right, []turing.Symbol{'a'})
	assert.Equal(t, m.InitialState(), m.AcceptState())

	// A zero-width mover has no transitions of its own; it only passes
	// control through once embedded by Concat. Run standalone, its first
	// Step finds no transition and rejects.
	m.LoadInput("a")
	assert.Equal(t, turing.Reject, m.Step())
}

func TestFind_CarriesPastNonTargetSymbols(t *testing.T) {
	t.Parallel()

	alphabet := []turing.Symbol{'a', 'b', turing.Blank}
	m := turing.Find('b', turing.Right, alphabet)
	m.LoadInput("aab")

	var status turing.Status
	for i := 0; i < 10 && status != turing.Accept && status != turing.Reject; i++ {
		status = m.Step()
	}

	assert.Equal(t, turing.Accept, status)
	assert.Equal(t, "aab", m.Tape())
}

func TestFind_HoldsInPlaceOnImmediateMatch(t *testing.T) {
	t.Parallel()

	alphabet := []turing.Symbol{'a', 'b'}
	m := turing.Find('a', turing.Right, alphabet)
	m.LoadInput("a")

	assert.Equal(t, turing.Accept, m.Step())
}

func TestConsume_MatchesAndRejectsOnMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  turing.Status
	}{
		{"matching symbol accepts", "a", turing.Accept},
		{"other symbol rejects", "b", turing.Reject},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := turing.Consume('a', turing.Right)
			m.LoadInput(tt.input)

			assert.Equal(t, tt.want, m.Step())
		})
	}
}

func TestExpect_EmptySequence_Errors(t *testing.T) {
	t.Parallel()

	_, err := turing.Expect(nil, turing.Right, nil, []turing.Symbol{'a'})
	require.ErrorIs(t, err, turing.ErrEmptySequence)
}

func TestExpect_MismatchedDistances_Errors(t *testing.T) {
	t.Parallel()

	_, err := turing.Expect([]turing.Symbol{'a', 'b'}, turing.Right, []int{1, 1}, []turing.Symbol{'a', 'b'})
	require.ErrorIs(t, err, turing.ErrMismatchedLengths)
}

// TestExpect_AdjacentPattern recognizes the fixed sequence "ab" with the two
// symbols immediately adjacent (distance 1).
func TestExpect_AdjacentPattern(t *testing.T) {
	t.Parallel()

	alphabet := []turing.Symbol{'a', 'b', turing.Blank}
	m, err := turing.Expect([]turing.Symbol{'a', 'b'}, turing.Right, []int{1}, alphabet)
	require.NoError(t, err)

	m.LoadInput("ab")

	var status turing.Status
	for i := 0; i < 10 && status != turing.Accept && status != turing.Reject; i++ {
		status = m.Step()
	}

	assert.Equal(t, turing.Accept, status)
}

// TestExpect_SparsePattern recognizes "a_b" (one cell of daylight between
// the two matched symbols), exercising a distance greater than 1.
func TestExpect_SparsePattern(t *testing.T) {
	t.Parallel()

	alphabet := []turing.Symbol{'a', 'b', turing.Blank}
	m, err := turing.Expect([]turing.Symbol{'a', 'b'}, turing.Right, []int{2}, alphabet)
	require.NoError(t, err)

	m.LoadInput("a_b")

	var status turing.Status
	for i := 0; i < 10 && status != turing.Accept && status != turing.Reject; i++ {
		status = m.Step()
	}

	assert.Equal(t, turing.Accept, status)
}

func TestUnionOfSequences_EmptySequences_Errors(t *testing.T) {
	t.Parallel()

	_, err := turing.UnionOfSequences(nil, turing.Right, nil, []turing.Symbol{'a'}, "alts")
	require.ErrorIs(t, err, turing.ErrEmptySequence)
}

// TestUnionOfSequences_AcceptsEitherAlternative builds a recognizer for "ab"
// or "ba" — distinct leading symbols, since the shared dispatch state can
// only hold one reaction per symbol — and checks both patterns are accepted
// from the shared entry point.
func TestUnionOfSequences_AcceptsEitherAlternative(t *testing.T) {
	t.Parallel()

	alphabet := []turing.Symbol{'a', 'b', turing.Blank}
	sequences := [][]turing.Symbol{{'a', 'b'}, {'b', 'a'}}
	distances := [][]int{{1}, {1}}

	m, err := turing.UnionOfSequences(sequences, turing.Right, distances, alphabet, "alts")
	require.NoError(t, err)

	for _, input := range []string{"ab", "ba"} {
		m.LoadInput(input)

		var status turing.Status
		for i := 0; i < 10 && status != turing.Accept && status != turing.Reject; i++ {
			status = m.Step()
		}

		assert.Equalf(t, turing.Accept, status, "input %q", input)
	}
}
