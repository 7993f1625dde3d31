package turing

import (
	"fmt"
	"strconv"
)

// Move returns a straight-line mover of length n: states "0".."n", with
// every symbol of alphabet carried dir cells without being altered.
// Move(0, ...) is the degenerate zero-width mover whose initial and accept
// state coincide.
func Move(n int, dir Direction, alphabet []Symbol) Machine {
	m := New()

	for i := 0; i < n; i++ {
		from := strconv.Itoa(i)
		to := strconv.Itoa(i + 1)

		for _, s := range alphabet {
			m.AddTransition(Key{State: from, Symbol: s}, Reaction{Next: to, Write: s, Dir: dir})
		}
	}

	m.SetInitial("0")
	m.SetAccept(strconv.Itoa(n))

	return m
}

// Find returns an unbounded search for symbol g in direction dir: a single
// looping "search" state that carries every other symbol along dir and
// moves to the accept state in place on g.
func Find(g Symbol, dir Direction, alphabet []Symbol) Machine {
	m := New()

	const search = "search"

	for _, s := range alphabet {
		if s == g {
			m.AddTransition(Key{State: search, Symbol: s}, Reaction{Next: m.AcceptState(), Write: s, Dir: Hold})
			continue
		}

		m.AddTransition(Key{State: search, Symbol: s}, Reaction{Next: search, Write: s, Dir: dir})
	}

	m.SetInitial(search)

	return m
}

// Consume returns a single-transition machine: (initial, g) -> (accept, g,
// dir). Any other symbol under the head rejects.
func Consume(g Symbol, dir Direction) Machine {
	m := New()
	m.AddTransition(Key{State: m.InitialState(), Symbol: g}, Reaction{Next: m.AcceptState(), Write: g, Dir: dir})

	return m
}

// Expect returns a linear recognizer for sequence, consumed in direction
// dir. Between consuming sequence[i] and sequence[i+1] the head advances
// distances[i] cells, so sparse patterns on the tape are supported.
// len(distances) must equal len(sequence)-1.
func Expect(sequence []Symbol, dir Direction, distances []int, alphabet []Symbol) (Machine, error) {
	if len(sequence) == 0 {
		return Machine{}, ErrEmptySequence
	}

	if len(distances) != len(sequence)-1 {
		return Machine{}, ErrMismatchedLengths
	}

	lead := Consume(sequence[0], dir)
	lead.SetTitle("expect0")

	if len(sequence) == 1 {
		return lead, nil
	}

	carriers := []Machine{lead}

	for i := 1; i < len(sequence); i++ {
		mover := Move(distances[i-1]-1, dir, alphabet)
		consumer := Consume(sequence[i], dir)

		carrier, err := MultiConcat([]Machine{mover, consumer}, alphabet, fmt.Sprintf("expectCarrier%d", i))
		if err != nil {
			return Machine{}, err
		}

		carriers = append(carriers, carrier)
	}

	// The chain's accept is the composite's own accept (MultiConcat already
	// sets it to the last carrier's accept state).
	return MultiConcat(carriers, alphabet, "Expect")
}

// UnionOfSequences recognizes any of a finite set of fixed patterns. Each
// sequence is built with Expect, then — following the spec's own guidance
// for multi-accept unions — every sub-machine's initial state is collapsed
// onto a shared dispatch state and every sub-machine's accept state is
// collapsed onto a shared accept state before the sub-machines are merged
// with MultiUnion, so the composite accepts if any one sequence matches.
//
// The shared dispatch state can hold only one reaction per symbol, so the
// sequences must be pairwise distinguishable by their first symbol; two
// sequences sharing a leading symbol would have one silently overwrite the
// other's dispatch transition.
func UnionOfSequences(sequences [][]Symbol, dir Direction, distances [][]int, alphabet []Symbol, title string) (Machine, error) {
	if len(sequences) == 0 {
		return Machine{}, ErrEmptySequence
	}

	const (
		sharedInitial = "[unionOfSequences]start"
		sharedAccept  = "[unionOfSequences]accept"
	)

	machines := make([]Machine, 0, len(sequences))

	for i, seq := range sequences {
		var dist []int
		if i < len(distances) {
			dist = distances[i]
		}

		em, err := Expect(seq, dir, dist, alphabet)
		if err != nil {
			return Machine{}, err
		}

		em = em.Prefix(fmt.Sprintf("seq%d", i))

		oldInitial, oldAccept := em.InitialState(), em.AcceptState()
		em = em.TransformStates(func(s State) State {
			switch s {
			case oldInitial:
				return sharedInitial
			case oldAccept:
				return sharedAccept
			default:
				return s
			}
		})

		machines = append(machines, em)
	}

	out, err := MultiUnion(machines, title)
	if err != nil {
		return Machine{}, err
	}

	out.SetInitial(sharedInitial)
	out.SetAccept(sharedAccept)

	return out, nil
}
