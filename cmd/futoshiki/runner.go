package main

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// options holds the parsed CLI flags for the futoshiki decider.
type options struct {
	PuzzleFile string
	Candidate  string
	Verbose    bool
	Silent     bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Decide whether a 16-digit candidate solves a 4x4 Futoshiki puzzle, using the turing-algebra composition library.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.PuzzleFile, "puzzle", "p", "", "path to a YAML puzzle definition (required)"),
		flagSet.StringVarP(&opts.Candidate, "candidate", "c", "", "16-digit candidate solution, row-major (required)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display the accept/reject verdict only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.PuzzleFile == "" {
		gologger.Fatal().Msgf("futoshiki: -puzzle is required")
	}

	if opts.Candidate == "" {
		gologger.Fatal().Msgf("futoshiki: -candidate is required")
	}

	return opts
}
