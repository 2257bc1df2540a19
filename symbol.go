package automata

import (
	"errors"
	"fmt"
)

var ErrUnknownSymbol = errors.New("unknown symbol")

// Symbol is one interned label of an alphabet. Symbols are indexes into the
// alphabet that interned them, so comparing two symbols from the same
// alphabet compares identity in O(1).
type Symbol int

// Alphabet interns the closed set of transition labels. It is declared once,
// before any automaton is built, and is read-only afterwards; automata built
// over the same Alphabet may be intersected with each other.
type Alphabet struct {
	labels []string
	index  map[string]Symbol
}

// NewAlphabet declares an alphabet containing the given labels. Duplicate
// labels collapse to a single symbol.
func NewAlphabet(labels ...string) *Alphabet {
	a := &Alphabet{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]Symbol, len(labels)),
	}
	for _, label := range labels {
		a.Intern(label)
	}
	return a
}

// Intern returns the symbol for label, creating it on first use. Interning
// the same label twice yields the same symbol.
func (a *Alphabet) Intern(label string) Symbol {
	if sym, ok := a.index[label]; ok {
		return sym
	}
	sym := Symbol(len(a.labels))
	a.labels = append(a.labels, label)
	a.index[label] = sym
	return sym
}

// Lookup resolves a caller-supplied label against the declared alphabet.
func (a *Alphabet) Lookup(label string) (Symbol, error) {
	sym, ok := a.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, label)
	}
	return sym, nil
}

// Label returns the textual label of sym.
func (a *Alphabet) Label(sym Symbol) string {
	return a.labels[sym]
}

// Size returns the number of distinct symbols.
func (a *Alphabet) Size() int {
	return len(a.labels)
}

// Symbols returns every symbol in declaration order. The search relies on
// this order being stable to keep its tie-breaking reproducible.
func (a *Alphabet) Symbols() []Symbol {
	syms := make([]Symbol, len(a.labels))
	for i := range syms {
		syms[i] = Symbol(i)
	}
	return syms
}

// Label keys one transition set of a state: either a symbol of the alphabet
// or the epsilon variant, which consumes no input. The zero Label is the
// first symbol of the alphabet; use Labeled or Epsilon to construct one.
type Label struct {
	sym Symbol
	eps bool
}

// Labeled returns the key for transitions consuming sym.
func Labeled(sym Symbol) Label {
	return Label{sym: sym}
}

// Epsilon returns the key for transitions consuming no input.
func Epsilon() Label {
	return Label{eps: true}
}

// IsEpsilon reports whether l is the epsilon variant.
func (l Label) IsEpsilon() bool {
	return l.eps
}

// Symbol returns the symbol of a non-epsilon label.
func (l Label) Symbol() Symbol {
	return l.sym
}
