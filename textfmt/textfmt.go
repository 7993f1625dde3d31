// Package textfmt reads and writes turing.Machine transition tables in a
// line-oriented text format:
//
//	init: <state>
//	accept: <state>
//
//	<from_state>,<from_symbol>
//	<to_state>,<to_symbol>,<dir>
//
//	<from_state>,<from_symbol>
//	<to_state>,<to_symbol>,<dir>
//	...
//
// Blank lines and lines beginning with "//" are comments/separators and are
// skipped. The two header lines must appear first, in order. Each transition
// is a two-line block; parsing is strict on field counts.
package textfmt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	turing "github.com/asphodex/turing-algebra"
)

var (
	// ErrMissingHeader is returned when the init:/accept: header lines are
	// absent or out of order.
	ErrMissingHeader = errors.New("missing init/accept header")

	// ErrFieldCount is returned when a transition line has the wrong number
	// of comma-separated fields, or when a transition block lacks its
	// second line.
	ErrFieldCount = errors.New("wrong field count")

	// ErrUnknownDirection is returned when a direction specifier is not one
	// of '<', '>', '-'.
	ErrUnknownDirection = errors.New("unknown direction specifier")

	// ErrEmptySymbol is returned when a symbol field is empty or holds more
	// than one character.
	ErrEmptySymbol = errors.New("empty symbol field")
)

const (
	initPrefix   = "init:"
	acceptPrefix = "accept:"
)

func isComment(line string) bool {
	return line == "" || strings.HasPrefix(line, "//")
}

// ReadCtx reads a transition table, initial state, and accept state from r.
func ReadCtx(ctx context.Context, r io.Reader) (table turing.Table, initial, accept turing.State, err error) {
	scanner := bufio.NewScanner(r)

	initLine, ok := nextCode(scanner)
	if !ok || !strings.HasPrefix(initLine, initPrefix) {
		return nil, "", "", ErrMissingHeader
	}

	initState := strings.TrimSpace(strings.TrimPrefix(initLine, initPrefix))

	acceptLine, ok := nextCode(scanner)
	if !ok || !strings.HasPrefix(acceptLine, acceptPrefix) {
		return nil, "", "", ErrMissingHeader
	}

	acceptState := strings.TrimSpace(strings.TrimPrefix(acceptLine, acceptPrefix))

	if initState == "" || acceptState == "" {
		return nil, "", "", ErrMissingHeader
	}

	table = turing.Table{}

	var pending []string

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, "", "", ctx.Err() //nolint:wrapcheck
		}

		line := strings.TrimSpace(scanner.Text())
		if isComment(line) {
			continue
		}

		pending = append(pending, line)
		if len(pending) < 2 {
			continue
		}

		key, reaction, err := parseBlock(pending[0], pending[1])
		if err != nil {
			return nil, "", "", err
		}

		table[key] = reaction
		pending = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, "", "", fmt.Errorf("read transitions: %w", err)
	}

	if len(pending) != 0 {
		return nil, "", "", fmt.Errorf("%w: dangling transition line %q", ErrFieldCount, pending[0])
	}

	return table, initState, acceptState, nil
}

// nextCode returns the next non-comment, non-blank line, or ok=false at EOF.
func nextCode(scanner *bufio.Scanner) (line string, ok bool) {
	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		if isComment(line) {
			continue
		}

		return line, true
	}

	return "", false
}

func parseBlock(fromLine, toLine string) (turing.Key, turing.Reaction, error) {
	const fromFields, toFields = 2, 3

	from := strings.Split(fromLine, ",")
	if len(from) != fromFields {
		return turing.Key{}, turing.Reaction{}, fmt.Errorf("%w: %q wants %d fields", ErrFieldCount, fromLine, fromFields)
	}

	to := strings.Split(toLine, ",")
	if len(to) != toFields {
		return turing.Key{}, turing.Reaction{}, fmt.Errorf("%w: %q wants %d fields", ErrFieldCount, toLine, toFields)
	}

	fromSymbol, err := soleRune(from[1])
	if err != nil {
		return turing.Key{}, turing.Reaction{}, err
	}

	toSymbol, err := soleRune(to[1])
	if err != nil {
		return turing.Key{}, turing.Reaction{}, err
	}

	if len(to[2]) != 1 {
		return turing.Key{}, turing.Reaction{}, fmt.Errorf("%w: %q", ErrUnknownDirection, to[2])
	}

	dir, ok := turing.ParseDirection(to[2][0])
	if !ok {
		return turing.Key{}, turing.Reaction{}, fmt.Errorf("%w: %q", ErrUnknownDirection, to[2])
	}

	key := turing.Key{State: from[0], Symbol: fromSymbol}
	reaction := turing.Reaction{Next: to[0], Write: toSymbol, Dir: dir}

	return key, reaction, nil
}

func soleRune(field string) (turing.Symbol, error) {
	runes := []rune(field)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrEmptySymbol, field)
	}

	return runes[0], nil
}

// Read is ReadCtx with a background context.
func Read(r io.Reader) (turing.Table, turing.State, turing.State, error) {
	return ReadCtx(context.Background(), r)
}

// ReadFileCtx reads a transition table from the file at path.
func ReadFileCtx(ctx context.Context, path string) (turing.Table, turing.State, turing.State, error) {
	clean := filepath.Clean(path)

	if _, err := os.Stat(clean); err != nil {
		return nil, "", "", fmt.Errorf("file %q does not exist: %w", clean, err)
	}

	file, err := os.Open(clean)
	if err != nil {
		return nil, "", "", fmt.Errorf("read file %q: %w", clean, err)
	}

	defer func() {
		_ = file.Close()
	}()

	return ReadCtx(ctx, file)
}

// ReadFile is ReadFileCtx with a background context.
func ReadFile(path string) (turing.Table, turing.State, turing.State, error) {
	return ReadFileCtx(context.Background(), path)
}

// Write emits m's transition table, initial state, and accept state in
// textfmt form. title and halt are not serialized.
func Write(w io.Writer, m turing.Machine) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s %s\n%s %s\n\n", initPrefix, m.InitialState(), acceptPrefix, m.AcceptState()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for key, reaction := range m.Transitions() {
		_, err := fmt.Fprintf(bw, "%s,%c\n%s,%c,%s\n\n", key.State, key.Symbol, reaction.Next, reaction.Write, reaction.Dir)
		if err != nil {
			return fmt.Errorf("write transition: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}
