package automata

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyFinished = errors.New("builder already finished")
	ErrNoStartState    = errors.New("no start state")
)

// Builder is the only way to construct an Automaton. States are declared by
// name; the first reference to a name allocates the state, later references
// reuse it. Finish freezes the automaton exactly once and drops the name
// map — after that the states are anonymous and every further call on the
// builder fails with ErrAlreadyFinished.
//
// A rejected call has no effect: arguments are validated before any state
// is allocated.
type Builder struct {
	aut      *Automaton
	names    map[string]int
	hasStart bool
	finished bool
}

// NewBuilder returns an empty builder for an automaton over alphabet.
func NewBuilder(alphabet *Alphabet) *Builder {
	return &Builder{
		aut: &Automaton{
			alphabet: alphabet,
			accept:   bitset.New(0),
			start:    -1,
		},
		names: make(map[string]int),
	}
}

// resolve returns the state named name, allocating it on first reference.
func (b *Builder) resolve(name string) int {
	if s, ok := b.names[name]; ok {
		return s
	}
	s := len(b.aut.edges)
	b.aut.edges = append(b.aut.edges, nil)
	b.names[name] = s
	return s
}

func (b *Builder) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: state name must not be empty", ErrInvalidArgument)
	}
	return nil
}

// AddAcceptState marks the named state as an accept state, creating it if
// this is its first reference.
func (b *Builder) AddAcceptState(name string) error {
	if b.finished {
		return ErrAlreadyFinished
	}
	if err := b.checkName(name); err != nil {
		return err
	}
	b.aut.accept.Set(uint(b.resolve(name)))
	return nil
}

// AddTransition adds an edge from source to destination. An empty label adds
// an epsilon edge; any other label must belong to the alphabet. Duplicate
// edges collapse because destinations are a set.
func (b *Builder) AddTransition(source, destination, label string) error {
	if b.finished {
		return ErrAlreadyFinished
	}
	if err := b.checkName(source); err != nil {
		return err
	}
	if err := b.checkName(destination); err != nil {
		return err
	}

	// Resolve the label before touching the state arena so a bad label
	// leaves the builder untouched.
	key := Epsilon()
	if label != "" {
		sym, err := b.aut.alphabet.Lookup(label)
		if err != nil {
			return err
		}
		key = Labeled(sym)
	}

	src := b.resolve(source)
	dst := b.resolve(destination)
	b.aut.addEdge(src, dst, key)
	return nil
}

// SetStartState records the named state as the start state. Calling it again
// replaces the previous choice; "start" is a property of the automaton, not
// of any state.
func (b *Builder) SetStartState(name string) error {
	if b.finished {
		return ErrAlreadyFinished
	}
	if err := b.checkName(name); err != nil {
		return err
	}
	b.aut.start = b.resolve(name)
	b.hasStart = true
	return nil
}

// Finish freezes and returns the automaton. It fails with ErrNoStartState if
// no start state was ever declared, and succeeds at most once per builder:
// any call after a successful Finish fails with ErrAlreadyFinished.
func (b *Builder) Finish() (*Automaton, error) {
	if b.finished {
		return nil, ErrAlreadyFinished
	}
	if !b.hasStart {
		return nil, ErrNoStartState
	}
	b.finished = true
	b.names = nil
	return b.aut, nil
}
