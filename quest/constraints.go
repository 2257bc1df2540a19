// Package quest models dungeon runs as words over the event alphabet and
// expresses the level rules as constraint automata. A run is accepted by a
// level when it is accepted by the dungeon automaton and by every constraint
// of that level; the constraints are combined by language intersection, so
// each constraint automaton accepts every event sequence except the ones
// that break its rule.
package quest

import (
	"errors"

	"github.com/questfa/automata"
)

// The dungeon event alphabet.
const (
	Arc      = "a" // passing through an arc loses all treasures carried
	Dragon   = "d" // passing the dragon
	Gate     = "g" // passing through a gate
	Key      = "k" // picking up the key
	River    = "r" // jumping into the river
	Sword    = "s" // picking up the sword
	Treasure = "t" // picking up a treasure
)

var eventLabels = []string{Arc, Dragon, Gate, Key, River, Sword, Treasure}

// EventAlphabet declares the dungeon alphabet. Build the dungeon automaton
// and every constraint over the same instance; symbol identity does not
// carry across alphabets.
func EventAlphabet() *automata.Alphabet {
	return automata.NewAlphabet(eventLabels...)
}

// selfLoops adds state→state edges on every event except the listed ones.
func selfLoops(b *automata.Builder, state string, except ...string) error {
	skip := make(map[string]bool, len(except))
	for _, label := range except {
		skip[label] = true
	}
	for _, label := range eventLabels {
		if skip[label] {
			continue
		}
		if err := b.AddTransition(state, state, label); err != nil {
			return err
		}
	}
	return nil
}

// mustFinish collapses the error handling of the canned constraint builders:
// they only ever add known labels to non-empty names, so a failure here is a
// programming error, not an input error.
func mustFinish(b *automata.Builder, err error) *automata.Automaton {
	if err != nil {
		panic(err)
	}
	aut, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return aut
}

// AtLeastTwoTreasures accepts runs that pick up two or more treasures.
func AtLeastTwoTreasures(alphabet *automata.Alphabet) *automata.Automaton {
	b := automata.NewBuilder(alphabet)
	err := errors.Join(
		b.SetStartState("zero"),
		b.AddTransition("zero", "one", Treasure),
		b.AddTransition("one", "two", Treasure),
		b.AddTransition("two", "two", Treasure),
		selfLoops(b, "zero", Treasure),
		selfLoops(b, "one", Treasure),
		selfLoops(b, "two", Treasure),
		b.AddAcceptState("two"),
	)
	return mustFinish(b, err)
}

// KeyBeforeGates accepts runs that never pass through a gate before picking
// up the key. A gate without the key has no outgoing edge, so any such run
// falls out of the language.
func KeyBeforeGates(alphabet *automata.Alphabet) *automata.Automaton {
	b := automata.NewBuilder(alphabet)
	err := errors.Join(
		b.SetStartState("nokey"),
		b.AddTransition("nokey", "key", Key),
		selfLoops(b, "nokey", Key, Gate),
		selfLoops(b, "key"),
		b.AddAcceptState("nokey"),
		b.AddAcceptState("key"),
	)
	return mustFinish(b, err)
}

// RiverAfterSwordlessDragon accepts runs where passing the dragon without
// carrying the sword is immediately followed by jumping into the river.
// Once the sword is picked up the dragon needs no reaction.
func RiverAfterSwordlessDragon(alphabet *automata.Alphabet) *automata.Automaton {
	b := automata.NewBuilder(alphabet)
	err := errors.Join(
		b.SetStartState("unarmed"),
		b.AddTransition("unarmed", "armed", Sword),
		b.AddTransition("unarmed", "fleeing", Dragon),
		b.AddTransition("fleeing", "unarmed", River),
		selfLoops(b, "unarmed", Sword, Dragon),
		selfLoops(b, "armed"),
		b.AddAcceptState("unarmed"),
		b.AddAcceptState("armed"),
	)
	return mustFinish(b, err)
}

// NoTreasuresAfterDragon accepts runs that pick up no treasure after the
// dragon has been passed for the first time.
func NoTreasuresAfterDragon(alphabet *automata.Alphabet) *automata.Automaton {
	b := automata.NewBuilder(alphabet)
	err := errors.Join(
		b.SetStartState("before"),
		b.AddTransition("before", "after", Dragon),
		selfLoops(b, "before", Dragon),
		selfLoops(b, "after", Treasure),
		b.AddAcceptState("before"),
		b.AddAcceptState("after"),
	)
	return mustFinish(b, err)
}

// TwoTreasuresKeptThroughArcs accepts runs that end carrying at least two
// treasures, where passing through an arc drops every treasure carried so
// far.
func TwoTreasuresKeptThroughArcs(alphabet *automata.Alphabet) *automata.Automaton {
	b := automata.NewBuilder(alphabet)
	err := errors.Join(
		b.SetStartState("zero"),
		b.AddTransition("zero", "one", Treasure),
		b.AddTransition("one", "two", Treasure),
		b.AddTransition("two", "two", Treasure),
		b.AddTransition("zero", "zero", Arc),
		b.AddTransition("one", "zero", Arc),
		b.AddTransition("two", "zero", Arc),
		selfLoops(b, "zero", Treasure, Arc),
		selfLoops(b, "one", Treasure, Arc),
		selfLoops(b, "two", Treasure, Arc),
		b.AddAcceptState("two"),
	)
	return mustFinish(b, err)
}
