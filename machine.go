// Package turing implements a single-tape, deterministic Turing-machine
// simulator and an algebraic machine-combinator library: small named
// machines (movers, finders, expectations, consumers, repeaters) compose via
// prefixing, redirection, concatenation, union, and repetition into a single
// monolithic decider.
package turing

// State is a non-empty string label identifying a machine configuration.
type State = string

// Symbol is a single character from the alphabet a client fixes per machine.
type Symbol = rune

// Blank is the reserved blank symbol. It must never appear in user input but
// may appear on tape once the machine has run.
const Blank Symbol = '_'

const (
	defaultInitial = "qStart"
	defaultAccept  = "Y"
	defaultHalt    = "H"
	defaultTitle   = "MyMachine"
)

// Key identifies a transition by the state it fires from and the symbol
// under the head that triggers it.
type Key struct {
	State  State
	Symbol Symbol
}

// Reaction is what a transition does: which state to move to, what to write
// under the head, and which way to move the head. A Reaction is fixed by the
// Key that selects it, never by the symbol that happened to be under the
// head beyond that key match.
type Reaction struct {
	Next  State
	Write Symbol
	Dir   Direction
}

// Table is the transition function: at most one Reaction per (state, symbol).
type Table map[Key]Reaction

// KeyedReaction pairs a Key and a Reaction, used by FromTransitionList to
// build a Table from a literal sequence of transitions.
type KeyedReaction struct {
	Key      Key
	Reaction Reaction
}

// Machine is a deterministic single-tape Turing machine plus, once
// LoadInput has been called, its run-state. Machine is a value type: clients
// may clone it freely and composition operators never mutate their operands.
type Machine struct {
	transitions Table

	initial State
	accept  State
	halt    State
	title   string

	tapeRight    []Symbol
	tapeLeft     []Symbol
	headIndex    int
	currentState State
}

// New returns an empty Machine with the default initial/accept/halt states
// and title.
func New() Machine {
	return Machine{
		transitions: Table{},
		initial:     defaultInitial,
		accept:      defaultAccept,
		halt:        defaultHalt,
		title:       defaultTitle,
	}
}

// FromTransitionList builds a Machine from a literal sequence of keyed
// reactions, in order. Later entries overwrite earlier ones that share a Key.
func FromTransitionList(list []KeyedReaction) Machine {
	m := New()
	for _, kr := range list {
		m.AddTransition(kr.Key, kr.Reaction)
	}

	return m
}

// FromTransitionRange builds a Machine whose transition table is a copy of t.
func FromTransitionRange(t Table) Machine {
	m := New()
	m.AddTransitions(t)

	return m
}

// AddTransition installs a single transition, overwriting any existing
// reaction for the same Key.
func (m *Machine) AddTransition(key Key, r Reaction) {
	if m.transitions == nil {
		m.transitions = Table{}
	}

	m.transitions[key] = r
}

// AddTransitions installs every transition in t, overwriting on key collision.
func (m *Machine) AddTransitions(t Table) {
	for k, v := range t {
		m.AddTransition(k, v)
	}
}

// SetInitial overrides the initial state label.
func (m *Machine) SetInitial(s State) { m.initial = s }

// SetAccept overrides the accept state label.
func (m *Machine) SetAccept(s State) { m.accept = s }

// SetHalt overrides the halt state label.
func (m *Machine) SetHalt(s State) { m.halt = s }

// SetTitle overrides the title used as a prefix when this machine is
// embedded into a composite.
func (m *Machine) SetTitle(title string) { m.title = title }

// InitialState returns the machine's initial state label.
func (m Machine) InitialState() State { return m.initial }

// AcceptState returns the machine's accept state label.
func (m Machine) AcceptState() State { return m.accept }

// HaltState returns the machine's halt state label.
func (m Machine) HaltState() State { return m.halt }

// Title returns the machine's title.
func (m Machine) Title() string { return m.title }

// CurrentState returns the state the machine is in after LoadInput/Step.
func (m Machine) CurrentState() State { return m.currentState }

// Transitions returns a copy of the machine's transition table.
func (m Machine) Transitions() Table {
	cloned := make(Table, len(m.transitions))
	for k, v := range m.transitions {
		cloned[k] = v
	}

	return cloned
}

// Clone returns an independent deep copy: a new transition table and, if
// input has been loaded, new tape slices. Composition operators build on
// Clone (directly or via Prefixed) so that they never mutate their operands.
func (m Machine) Clone() Machine {
	clone := m
	clone.transitions = m.Transitions()

	if m.tapeRight != nil {
		clone.tapeRight = append([]Symbol(nil), m.tapeRight...)
	}

	if m.tapeLeft != nil {
		clone.tapeLeft = append([]Symbol(nil), m.tapeLeft...)
	}

	return clone
}
