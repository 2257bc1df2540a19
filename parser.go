package automata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// The '.aut' line forms. Every non-blank line of a description maps to
// exactly one builder call:
//
//	(START) |- STATE        declares the start state
//	STATE -| (FINAL)        declares an accept state
//	STATE LABEL STATE       declares a transition; the label $ is epsilon
const (
	startMarker  = "(START)"
	finalMarker  = "(FINAL)"
	startsArrow  = "|-"
	acceptsArrow = "-|"
	epsilonLabel = "$"
)

// Parse builds an automaton from a '.aut' description read from r. Lines
// are independent and may appear in any order; blank lines are skipped.
// Errors carry the 1-based line number and wrap the builder's error values.
func Parse(r io.Reader, alphabet *Alphabet) (*Automaton, error) {
	b := NewBuilder(alphabet)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := parseLine(b, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.Finish()
}

// ParseFile builds an automaton from the '.aut' file at path.
func ParseFile(path string, alphabet *Alphabet) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, alphabet)
}

func parseLine(b *Builder, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: expected 3 fields, got %d", ErrInvalidArgument, len(fields))
	}

	switch {
	case fields[0] == startMarker:
		if fields[1] != startsArrow {
			return fmt.Errorf("%w: %q after %s", ErrInvalidArgument, fields[1], startMarker)
		}
		return b.SetStartState(fields[2])

	case fields[2] == finalMarker:
		if fields[1] != acceptsArrow {
			return fmt.Errorf("%w: %q before %s", ErrInvalidArgument, fields[1], finalMarker)
		}
		return b.AddAcceptState(fields[0])

	default:
		label := fields[1]
		if label == epsilonLabel {
			label = ""
		}
		return b.AddTransition(fields[0], fields[2], label)
	}
}
