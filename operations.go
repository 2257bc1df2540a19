package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// Intersection returns a new automaton accepting exactly the intersection of
// the languages accepted by a and other. Both operands must have been built
// over the same alphabet.
//
// The result is the standard cross product: one state per pair (s1, s2),
// accepting iff both components accept, with both sides consuming the same
// symbol on every labeled edge. Epsilon edges are not synchronized — either
// side may take an epsilon move while the other stands still — because
// epsilon moves are silent and must not force the operands into lockstep.
// Neither operand is determinized and neither is mutated; the result owns a
// fresh state set keyed s1*|other|+s2.
func (a *Automaton) Intersection(other *Automaton) *Automaton {
	numA := a.NumStates()
	numB := other.NumStates()

	product := &Automaton{
		alphabet: a.alphabet,
		edges:    make([]map[Label]*bitset.BitSet, numA*numB),
		accept:   bitset.New(uint(numA * numB)),
		start:    a.start*numB + other.start,
	}
	pair := func(s1, s2 int) int { return s1*numB + s2 }

	symbols := a.alphabet.Symbols()
	for s1 := 0; s1 < numA; s1++ {
		for s2 := 0; s2 < numB; s2++ {
			p := pair(s1, s2)

			if a.IsAccept(s1) && other.IsAccept(s2) {
				product.accept.Set(uint(p))
			}

			for _, sym := range symbols {
				d1s := a.Transitions(s1, Labeled(sym))
				d2s := other.Transitions(s2, Labeled(sym))
				for d1, ok1 := d1s.NextSet(0); ok1; d1, ok1 = d1s.NextSet(d1 + 1) {
					for d2, ok2 := d2s.NextSet(0); ok2; d2, ok2 = d2s.NextSet(d2 + 1) {
						product.addEdge(p, pair(int(d1), int(d2)), Labeled(sym))
					}
				}
			}

			// a moves on epsilon, other stands still:
			e1s := a.Transitions(s1, Epsilon())
			for d1, ok := e1s.NextSet(0); ok; d1, ok = e1s.NextSet(d1 + 1) {
				product.addEdge(p, pair(int(d1), s2), Epsilon())
			}

			// other moves on epsilon, a stands still:
			e2s := other.Transitions(s2, Epsilon())
			for d2, ok := e2s.NextSet(0); ok; d2, ok = e2s.NextSet(d2 + 1) {
				product.addEdge(p, pair(s1, int(d2)), Epsilon())
			}
		}
	}

	return product
}

// ShortestExample returns the shortest string accepted by the automaton
// (accept = true), or the shortest string leaving it in a configuration
// whose epsilon closure holds no accepting state (accept = false). The
// second result is false when no such string exists.
//
// The search is breadth-first over (state, word) pairs: epsilon moves are
// free and explored at the current length before any symbol step, so the
// first hit has globally minimal length. Among equal-length answers the
// winner follows alphabet declaration order and ascending state index;
// callers must not rely on which one they get.
func (a *Automaton) ShortestExample(accept bool) (string, bool) {
	type entry struct {
		state int
		word  string
	}

	visited := bitset.New(uint(a.NumStates()))
	visited.Set(uint(a.start))
	queue := []entry{{state: a.start, word: ""}}

	symbols := a.alphabet.Symbols()
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		closure := a.EpsilonClosure(e.state)
		for s, ok := closure.NextSet(0); ok; s, ok = closure.NextSet(s + 1) {
			if a.accept.Test(s) == accept {
				return e.word, true
			}
		}

		// Closure members keep the same word: their labeled edges are
		// reachable without consuming a symbol.
		for s, ok := closure.NextSet(0); ok; s, ok = closure.NextSet(s + 1) {
			if !visited.Test(s) {
				visited.Set(s)
				queue = append(queue, entry{state: int(s), word: e.word})
			}
		}

		for _, sym := range symbols {
			dests := a.Transitions(e.state, Labeled(sym))
			for d, ok := dests.NextSet(0); ok; d, ok = dests.NextSet(d + 1) {
				if !visited.Test(d) {
					visited.Set(d)
					queue = append(queue, entry{
						state: int(d),
						word:  e.word + a.alphabet.Label(sym),
					})
				}
			}
		}
	}

	return "", false
}

// Accepts reports whether the automaton accepts the word spelled by the
// given labels. It steps a configuration set through the word, expanding
// epsilon closures after every symbol, and fails only when a label is not in
// the alphabet.
func (a *Automaton) Accepts(labels ...string) (bool, error) {
	current := a.EpsilonClosure(a.start)

	for _, label := range labels {
		sym, err := a.alphabet.Lookup(label)
		if err != nil {
			return false, err
		}

		next := bitset.New(uint(a.NumStates()))
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			dests := a.Transitions(int(s), Labeled(sym))
			for d, ok2 := dests.NextSet(0); ok2; d, ok2 = dests.NextSet(d + 1) {
				next.InPlaceUnion(a.EpsilonClosure(int(d)))
			}
		}
		if !next.Any() {
			return false, nil
		}
		current = next
	}

	for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
		if a.accept.Test(s) {
			return true, nil
		}
	}
	return false, nil
}

// AcceptsString is Accepts over a word of single-character labels.
func (a *Automaton) AcceptsString(word string) (bool, error) {
	labels := make([]string, 0, len(word))
	for _, r := range word {
		labels = append(labels, string(r))
	}
	return a.Accepts(labels...)
}
