// Package futoshiki lowers a 4x4 Futoshiki puzzle (puzzlecfg.Puzzle) into a
// turing.Machine that decides whether a 16-digit candidate solution, laid
// out row-major on the tape, satisfies the puzzle's given digits and
// inequality clues. It is the worked example the turing package's composition
// algebra is built to support: a client assembling a single decider out of
// small named machines via Move, Consume, Concat/MultiConcat, and Union.
package futoshiki

import (
	"fmt"

	turing "github.com/asphodex/turing-algebra"
	"github.com/asphodex/turing-algebra/futoshiki/puzzlecfg"
	"github.com/projectdiscovery/gologger"
)

const gridWidth = 4
const gridCells = gridWidth * gridWidth

// Digits is the conventional alphabet a 4x4 candidate solution is written
// in, suitable as the alphabet argument to Build.
var Digits = []turing.Symbol{'1', '2', '3', '4'}

// Build lowers p into a decider over 16-symbol tapes using alphabet. The
// tape is read as row-major cells 0..15; a candidate is accepted iff every
// one of those cells holds a symbol of alphabet, every given digit in p.Grid
// matches, and every clue in p.Clues holds.
func Build(p *puzzlecfg.Puzzle, alphabet []turing.Symbol) (turing.Machine, error) {
	var stages []turing.Machine

	for r := 0; r < gridWidth; r++ {
		for c := 0; c < gridWidth; c++ {
			given := p.Grid[r][c]
			if given == 0 {
				continue
			}

			idx := puzzlecfg.CellIndex(r, c)

			stage, err := pinnedCell(idx, turing.Symbol('0'+rune(given)), alphabet)
			if err != nil {
				return turing.Machine{}, fmt.Errorf("pin cell (%d,%d): %w", r, c, err)
			}

			stages = append(stages, stage)
		}
	}

	for i, clue := range p.Clues {
		if clue.Rel == puzzlecfg.None {
			continue
		}

		stage, err := clueStage(clue, i, alphabet)
		if err != nil {
			return turing.Machine{}, fmt.Errorf("clue %d: %w", i, err)
		}

		stages = append(stages, stage)
	}

	format := turing.Move(gridCells, turing.Right, alphabet)
	format.SetTitle("format")
	stages = append(stages, format)

	gologger.Verbose().Msgf("futoshiki: built decider from %d stage(s)", len(stages))

	composite, err := turing.MultiConcat(stages, alphabet, "futoshiki")
	if err != nil {
		return turing.Machine{}, fmt.Errorf("assemble decider: %w", err)
	}

	return composite, nil
}

// pinnedCell checks that the digit at flat index idx equals want, leaving
// the head back at tape position 0 so stages can be freely sequenced.
func pinnedCell(idx int, want turing.Symbol, alphabet []turing.Symbol) (turing.Machine, error) {
	advance := turing.Move(idx, turing.Right, alphabet)
	advance.SetTitle(fmt.Sprintf("pin%dAdvance", idx))

	consume := turing.Consume(want, turing.Hold)
	consume.SetTitle(fmt.Sprintf("pin%dConsume", idx))

	rewind := turing.Move(idx, turing.Left, alphabet)
	rewind.SetTitle(fmt.Sprintf("pin%dRewind", idx))

	return turing.MultiConcat([]turing.Machine{advance, consume, rewind}, alphabet, fmt.Sprintf("pin%d", idx))
}

// clueStage checks a single inequality clue, leaving the head back at tape
// position 0.
func clueStage(clue puzzlecfg.Clue, index int, alphabet []turing.Symbol) (turing.Machine, error) {
	from := puzzlecfg.CellIndex(clue.FromRow, clue.FromCol)
	to := puzzlecfg.CellIndex(clue.ToRow, clue.ToCol)

	gap := to - from
	if gap <= 0 {
		return turing.Machine{}, fmt.Errorf("clue must run from an earlier cell to a later one, got %d -> %d", from, to)
	}

	advance := turing.Move(from, turing.Right, alphabet)
	advance.SetTitle(fmt.Sprintf("clue%dAdvance", index))

	compare, err := compareMachine(clue.Rel, gap, index, alphabet)
	if err != nil {
		return turing.Machine{}, err
	}

	rewind := turing.Move(to, turing.Left, alphabet)
	rewind.SetTitle(fmt.Sprintf("clue%dRewind", index))

	return turing.MultiConcat([]turing.Machine{advance, compare, rewind}, alphabet, fmt.Sprintf("clue%d", index))
}

// compareMachine reads a first digit, advances gap-1 more cells, then reads
// a second digit, accepting iff the pair satisfies rel. Each first-digit
// branch is built and prefixed independently over alphabet, then merged
// with a shared entry point — safe because the branches are keyed by
// distinct first symbols, so the shared dispatch state never collides,
// unlike UnionOfSequences over patterns that might share a leading symbol.
func compareMachine(rel puzzlecfg.Relation, gap, index int, alphabet []turing.Symbol) (turing.Machine, error) {
	sharedInitial := turing.State(fmt.Sprintf("[cmp%d]start", index))
	sharedAccept := turing.State(fmt.Sprintf("[cmp%d]accept", index))

	legs := make([]turing.Machine, 0, len(alphabet))

	for _, d1 := range alphabet {
		consume := turing.Consume(d1, turing.Right)
		consume.SetTitle(fmt.Sprintf("cmp%dConsume%c", index, d1))

		carry := turing.Move(gap-1, turing.Right, alphabet)
		carry.SetTitle(fmt.Sprintf("cmp%dCarry%c", index, d1))

		leg, err := turing.MultiConcat([]turing.Machine{consume, carry}, alphabet, fmt.Sprintf("cmp%dLeg%c", index, d1))
		if err != nil {
			return turing.Machine{}, err
		}

		for _, d2 := range alphabet {
			if !satisfies(rel, d1, d2) {
				continue
			}

			leg.AddTransition(
				turing.Key{State: leg.AcceptState(), Symbol: d2},
				turing.Reaction{Next: sharedAccept, Write: d2, Dir: turing.Hold},
			)
		}

		oldInitial := leg.InitialState()
		leg = leg.TransformStates(func(s turing.State) turing.State {
			if s == oldInitial {
				return sharedInitial
			}

			return s
		})

		legs = append(legs, leg)
	}

	out, err := turing.MultiUnion(legs, fmt.Sprintf("cmp%d", index))
	if err != nil {
		return turing.Machine{}, err
	}

	out.SetInitial(sharedInitial)
	out.SetAccept(sharedAccept)

	return out, nil
}

func satisfies(rel puzzlecfg.Relation, d1, d2 turing.Symbol) bool {
	switch rel {
	case puzzlecfg.Less:
		return d1 < d2
	case puzzlecfg.Greater:
		return d1 > d2
	default:
		return false
	}
}
