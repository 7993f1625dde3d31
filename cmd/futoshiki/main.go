// Command futoshiki builds a decider machine for a 4x4 Futoshiki puzzle and
// runs a candidate solution against it, reporting accept or reject.
package main

import (
	"os"

	turing "github.com/asphodex/turing-algebra"
	"github.com/asphodex/turing-algebra/futoshiki"
	"github.com/asphodex/turing-algebra/futoshiki/puzzlecfg"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := parseFlags()

	puzzle, err := puzzlecfg.LoadFile(opts.PuzzleFile)
	if err != nil {
		gologger.Fatal().Msgf("futoshiki: %s", err)
	}

	m, err := futoshiki.Build(puzzle, futoshiki.Digits)
	if err != nil {
		gologger.Fatal().Msgf("futoshiki: failed to build decider: %s", err)
	}

	m.LoadInput(opts.Candidate)

	status := turing.Running
	for !status.Terminal() {
		status = m.Step()
	}

	switch status {
	case turing.Accept:
		gologger.Silent().Msgf("%s: accepted", opts.Candidate)
	default:
		gologger.Silent().Msgf("%s: rejected (%s)", opts.Candidate, status)
		os.Exit(1)
	}
}
