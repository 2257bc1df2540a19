package quest

import (
	"fmt"

	u "github.com/araddon/gou"

	"github.com/questfa/automata"
)

// Level selects which constraint set applies to a dungeon.
type Level int

const (
	// Level0 applies no constraints at all.
	Level0 Level = iota
	// Level1 requires two treasures, the key before any gate, and the
	// river right after a swordless dragon.
	Level1
	// Level2 requires the key before any gate, the river right after a
	// swordless dragon, no treasures once the dragon has been passed, and
	// two treasures carried through every arc.
	Level2
)

func (l Level) String() string {
	return fmt.Sprintf("level %d", int(l))
}

// constraints returns the constraint automata of this level, built over the
// given alphabet.
func (l Level) constraints(alphabet *automata.Alphabet) []*automata.Automaton {
	switch l {
	case Level1:
		return []*automata.Automaton{
			AtLeastTwoTreasures(alphabet),
			KeyBeforeGates(alphabet),
			RiverAfterSwordlessDragon(alphabet),
		}
	case Level2:
		return []*automata.Automaton{
			KeyBeforeGates(alphabet),
			RiverAfterSwordlessDragon(alphabet),
			NoTreasuresAfterDragon(alphabet),
			TwoTreasuresKeptThroughArcs(alphabet),
		}
	default:
		return nil
	}
}

// Apply returns the dungeon automaton with every constraint of this level
// intersected onto it. The dungeon automaton is not modified; Level0 returns
// it unchanged.
func (l Level) Apply(dungeon *automata.Automaton) *automata.Automaton {
	result := dungeon
	for i, constraint := range l.constraints(dungeon.Alphabet()) {
		result = result.Intersection(constraint)
		u.Debugf("%s: constraint %d applied, %d states", l, i+1, result.NumStates())
	}
	return result
}
