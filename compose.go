package turing

// TransformStates returns a copy of m with every state label — table keys,
// reaction next-states, initial, accept, halt, and current-state if a run is
// in progress — rewritten by fn. Prefix and every rename operation delegate
// to this primitive so that no occurrence of a state name is ever missed.
func (m Machine) TransformStates(fn func(State) State) Machine {
	out := m.Clone()

	renamed := make(Table, len(m.transitions))
	for k, v := range m.transitions {
		renamed[Key{State: fn(k.State), Symbol: k.Symbol}] = Reaction{
			Next:  fn(v.Next),
			Write: v.Write,
			Dir:   v.Dir,
		}
	}

	out.transitions = renamed
	out.initial = fn(m.initial)
	out.accept = fn(m.accept)
	out.halt = fn(m.halt)

	if m.currentState != "" {
		out.currentState = fn(m.currentState)
	}

	return out
}

// Prefix renames every state label "q" to "[p]q", disjointing this
// machine's state-name space from any other machine prefixed with a
// different p. title is preserved.
func (m Machine) Prefix(p string) Machine {
	return m.TransformStates(func(s State) State {
		return "[" + p + "]" + s
	})
}

// Prefixed prefixes m by its own title.
func (m Machine) Prefixed() Machine {
	return m.Prefix(m.title)
}

// RedirectState adds, for each symbol in alphabet, the through-transition
// (from, s) -> ((to, s), Hold). It never removes prior transitions, which is
// how accept and loop-check states become through-states during Concat and
// Repeat. Applying RedirectState twice with the same arguments is a no-op
// the second time, since the installed reactions are identical.
func (m *Machine) RedirectState(from, to State, alphabet []Symbol) {
	for _, s := range alphabet {
		m.AddTransition(Key{State: from, Symbol: s}, Reaction{Next: to, Write: s, Dir: Hold})
	}
}

// concatInto merges next (prefixed by its own title) after acc (already
// prefixed), redirecting acc's accept state through to next's initial. acc
// is cloned, never mutated in place.
func concatInto(acc, next Machine, alphabet []Symbol) Machine {
	nextP := next.Prefixed()

	out := acc.Clone()
	out.RedirectState(out.accept, nextP.initial, alphabet)
	out.AddTransitions(nextP.transitions)
	out.accept = nextP.accept

	return out
}

// Concat sequences a then b: a's accept state is redirected into b's
// initial state, so the composite accepts exactly the strings on which a
// runs to accept and then b, starting from the tape a left, accepts. a and
// b must carry distinct titles.
func Concat(a, b Machine, alphabet []Symbol, title string) Machine {
	out := concatInto(a.Prefixed(), b, alphabet)
	out.title = title

	return out
}

// MultiConcat left-folds Concat over a nonempty sequence of machines,
// starting from the prefixed first element. Each machine is prefixed by its
// own title exactly once, regardless of sequence length.
func MultiConcat(ms []Machine, alphabet []Symbol, title string) (Machine, error) {
	if len(ms) == 0 {
		return Machine{}, ErrEmptySequence
	}

	acc := ms[0].Prefixed()
	for _, next := range ms[1:] {
		acc = concatInto(acc, next, alphabet)
	}

	acc.title = title

	return acc, nil
}

// MultiUnion merges every machine's transition table into the first,
// without renaming and without redirecting accept states. The result
// inherits initial and accept from ms[0]. Callers are responsible for having
// already disambiguated state names, typically by prefixing independently
// constructed sub-machines, or by deliberately sharing an entry/exit
// protocol across them.
func MultiUnion(ms []Machine, title string) (Machine, error) {
	if len(ms) == 0 {
		return Machine{}, ErrEmptySequence
	}

	out := ms[0].Clone()
	for _, next := range ms[1:] {
		out.AddTransitions(next.transitions)
	}

	out.title = title

	return out, nil
}

// Union is the two-ary convenience form of MultiUnion.
func Union(a, b Machine, title string) Machine {
	out, _ := MultiUnion([]Machine{a, b}, title)
	return out
}

// RepeatVariant selects whether Repeat loops while or until the guard
// symbol is under the head when the body accepts.
type RepeatVariant int

const (
	// DoWhile loops the body again if the guard symbol IS under the head
	// when the body accepts, and breaks on any other symbol.
	DoWhile RepeatVariant = iota
	// DoUntil loops the body again if the guard symbol is NOT under the
	// head when the body accepts, and breaks when it is — the guard
	// terminates the loop rather than continuing it. See Repeat.
	DoUntil
)

// Repeat loops body until (DoUntil) or while (DoWhile) the symbol under the
// head is guard at the moment body accepts.
//
// Construction follows the spec: embed body via a single-element MultiConcat
// to obtain a prefixed working copy R, install a blanket redirect from R's
// accept to a fresh "check" state and from "check" onward (to R's original
// initial for DoUntil, to a fresh "break" state for DoWhile), then OVERRIDE
// the single (check, guard) entry — redirect first, override second;
// reversing the order silently breaks the loop.
//
// The spec's own worked example requires a zero-iteration accept (DoUntil
// immediately breaking when the guard is already under the head before body
// ever runs), which the construction as literally narrated cannot produce,
// since it never revisits R's entry point. This implementation resolves
// that by routing the composite's OWN initial state through "check" as
// well, so the guard is tested once before the first iteration and again
// after every iteration thereafter — the same check, reached from two
// places, which is what makes zero iterations possible at all.
func Repeat(body Machine, variant RepeatVariant, guard Symbol, alphabet []Symbol, name string) Machine {
	r, _ := MultiConcat([]Machine{body}, alphabet, name)

	origInitial := r.initial
	check := "[" + name + "]check"
	brk := "[" + name + "]break"

	r.RedirectState(r.accept, check, alphabet)

	switch variant {
	case DoUntil:
		r.RedirectState(check, origInitial, alphabet)
		r.AddTransition(Key{State: check, Symbol: guard}, Reaction{Next: brk, Write: guard, Dir: Hold})
	case DoWhile:
		r.RedirectState(check, brk, alphabet)
		r.AddTransition(Key{State: check, Symbol: guard}, Reaction{Next: origInitial, Write: guard, Dir: Hold})
	}

	r.accept = brk
	r.initial = check

	return r
}
