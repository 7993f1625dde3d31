package turing

// Status is the observable classification of a Machine after a Step.
type Status int

const (
	// Running means the machine has neither accepted, halted, nor rejected.
	Running Status = iota
	// Accept means the current state equals the machine's accept state.
	Accept
	// Halt means the current state equals the machine's halt state.
	Halt
	// Reject means no transition exists for (currentState, symbolAtHead).
	Reject
)

// String renders a human-readable name for s.
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Accept:
		return "Accept"
	case Halt:
		return "Halt"
	case Reject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Terminal reports whether s ends the run. Running is the only non-terminal status.
func (s Status) Terminal() bool {
	return s != Running
}
