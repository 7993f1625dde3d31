package turing

import "strings"

// LoadInput resets run-state: the head returns to position 0, the current
// state becomes the initial state, and the tape is (re)seeded from s. An
// empty input yields a tape holding a single Blank. LoadInput may be called
// repeatedly to rerun a Machine from scratch.
func (m *Machine) LoadInput(s string) {
	m.currentState = m.initial
	m.headIndex = 0
	m.tapeLeft = nil

	if s == "" {
		m.tapeRight = []Symbol{Blank}
		return
	}

	m.tapeRight = []Symbol(s)
}

// Step looks up the transition for (currentState, symbolUnderHead). If none
// exists, it returns Reject and leaves the tape and state untouched so the
// client may inspect them. Otherwise it writes, transitions, moves the head,
// and classifies the new state. The tape is blank-filled on demand: a cell
// is materialized only once a step actually needs to read it, so a cell the
// head merely passes through on its way to a terminal state is never
// materialized.
func (m *Machine) Step() Status {
	m.ensureCell(m.headIndex)
	sym := m.symbolAt(m.headIndex)
	key := Key{State: m.currentState, Symbol: sym}

	reaction, ok := m.transitions[key]
	if !ok {
		return Reject
	}

	m.writeAt(m.headIndex, reaction.Write)
	m.currentState = reaction.Next
	m.headIndex += int(reaction.Dir)

	switch m.currentState {
	case m.accept:
		return Accept
	case m.halt:
		return Halt
	default:
		return Running
	}
}

// Tape returns the tape contents as a string: the reversed left tape
// followed by the right tape.
func (m Machine) Tape() string {
	var sb strings.Builder

	for i := len(m.tapeLeft) - 1; i >= 0; i-- {
		sb.WriteRune(m.tapeLeft[i])
	}

	for _, r := range m.tapeRight {
		sb.WriteRune(r)
	}

	return sb.String()
}

// Head renders the tape position of the head as blanks with a caret,
// followed by the current state in parentheses. Its only consumer is human
// display.
func (m Machine) Head() string {
	pos := len(m.tapeLeft) + m.headIndex

	var sb strings.Builder

	for i := 0; i < pos; i++ {
		sb.WriteByte(' ')
	}

	sb.WriteByte('^')
	sb.WriteString(" (")
	sb.WriteString(m.currentState)
	sb.WriteByte(')')

	return sb.String()
}

func (m *Machine) symbolAt(p int) Symbol {
	if p >= 0 {
		return m.tapeRight[p]
	}

	return m.tapeLeft[-p-1]
}

func (m *Machine) writeAt(p int, sym Symbol) {
	if p >= 0 {
		m.tapeRight[p] = sym
		return
	}

	m.tapeLeft[-p-1] = sym
}

// ensureCell materializes the cell at p as Blank if it lies one past either
// tape's current end. p is always within one cell of previously-visited
// territory, since the head only ever moves by one position per step.
func (m *Machine) ensureCell(p int) {
	if p >= 0 {
		for p >= len(m.tapeRight) {
			m.tapeRight = append(m.tapeRight, Blank)
		}

		return
	}

	idx := -p - 1
	for idx >= len(m.tapeLeft) {
		m.tapeLeft = append(m.tapeLeft, Blank)
	}
}
