package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// Automaton is a non-deterministic finite automaton with epsilon transitions
// over a fixed alphabet. States are ints indexing an arena owned by the
// automaton; each state maps labels (or epsilon) to a set of destination
// states, accept flags live in one bitset, and exactly one state is the
// start state. Automata are built with Builder and are immutable once
// Finish returns, so they may be shared and read concurrently.
type Automaton struct {
	alphabet *Alphabet

	// edges[s] holds the outgoing transition sets of state s, keyed by
	// label; a nil map or missing key means no such edge.
	edges  []map[Label]*bitset.BitSet
	accept *bitset.BitSet
	start  int
}

// read-only; handed out whenever a state has no edge for a label so that
// callers never see a missing key as anything but an empty set.
var noDests = bitset.New(0)

// Alphabet returns the alphabet this automaton was built over.
func (a *Automaton) Alphabet() *Alphabet {
	return a.alphabet
}

// NumStates returns how many states this automaton owns.
func (a *Automaton) NumStates() int {
	return len(a.edges)
}

// Start returns the start state.
func (a *Automaton) Start() int {
	return a.start
}

// IsAccept reports whether state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.accept.Test(uint(state))
}

// Transitions returns the destination set of state under label. The result
// is empty, never nil and never an error, when the state has no such edge;
// it must not be modified.
func (a *Automaton) Transitions(state int, label Label) *bitset.BitSet {
	m := a.edges[state]
	if m == nil {
		return noDests
	}
	dests, ok := m[label]
	if !ok {
		return noDests
	}
	return dests
}

// addEdge wires state src to dst under label, creating the destination set
// lazily. Only the Builder and Intersection call this, before the automaton
// is handed out.
func (a *Automaton) addEdge(src, dst int, label Label) {
	m := a.edges[src]
	if m == nil {
		m = make(map[Label]*bitset.BitSet)
		a.edges[src] = m
	}
	dests, ok := m[label]
	if !ok {
		dests = bitset.New(uint(len(a.edges)))
		m[label] = dests
	}
	dests.Set(uint(dst))
}

// EpsilonClosure returns the set of states reachable from state using only
// epsilon edges. The closure always contains state itself; epsilon cycles
// are legal and terminate because no state is visited twice.
func (a *Automaton) EpsilonClosure(state int) *bitset.BitSet {
	closure := bitset.New(uint(len(a.edges)))
	closure.Set(uint(state))

	workList := []int{state}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		eps := a.Transitions(s, Epsilon())
		for d, ok := eps.NextSet(0); ok; d, ok = eps.NextSet(d + 1) {
			if !closure.Test(d) {
				closure.Set(d)
				workList = append(workList, int(d))
			}
		}
	}
	return closure
}
