package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitions(t *testing.T) {
	t.Run("freshStateHasEmptySets", func(t *testing.T) {
		b := NewBuilder(NewAlphabet("X"))
		require.Nil(t, b.SetStartState("q0"))
		aut, err := b.Finish()
		require.Nil(t, err)

		x, _ := aut.Alphabet().Lookup("X")
		assert.Equal(t, uint(0), aut.Transitions(aut.Start(), Labeled(x)).Count())
		assert.Equal(t, uint(0), aut.Transitions(aut.Start(), Epsilon()).Count())
	})

	t.Run("parallelLabelsKeptApart", func(t *testing.T) {
		b := NewBuilder(NewAlphabet("X", "Y"))
		require.Nil(t, b.SetStartState("q0"))
		require.Nil(t, b.AddTransition("q0", "q1", "X"))
		require.Nil(t, b.AddTransition("q0", "q2", "Y"))
		require.Nil(t, b.AddTransition("q0", "q2", ""))
		aut, err := b.Finish()
		require.Nil(t, err)

		x, _ := aut.Alphabet().Lookup("X")
		y, _ := aut.Alphabet().Lookup("Y")
		assert.Equal(t, uint(1), aut.Transitions(0, Labeled(x)).Count())
		assert.Equal(t, uint(1), aut.Transitions(0, Labeled(y)).Count())
		assert.Equal(t, uint(1), aut.Transitions(0, Epsilon()).Count())
	})
}

func TestEpsilonClosure(t *testing.T) {
	// q0 -eps-> q1 -eps-> q2 -eps-> q0 (cycle), q2 -X-> q3
	build := func() *Automaton {
		b := NewBuilder(NewAlphabet("X"))
		require.Nil(t, b.SetStartState("q0"))
		require.Nil(t, b.AddTransition("q0", "q1", ""))
		require.Nil(t, b.AddTransition("q1", "q2", ""))
		require.Nil(t, b.AddTransition("q2", "q0", ""))
		require.Nil(t, b.AddTransition("q2", "q3", "X"))
		aut, err := b.Finish()
		require.Nil(t, err)
		return aut
	}

	t.Run("reflexive", func(t *testing.T) {
		aut := build()
		for s := 0; s < aut.NumStates(); s++ {
			assert.True(t, aut.EpsilonClosure(s).Test(uint(s)))
		}
	})

	t.Run("followsOnlyEpsilonEdges", func(t *testing.T) {
		aut := build()
		closure := aut.EpsilonClosure(aut.Start())
		assert.Equal(t, uint(3), closure.Count())
		assert.False(t, closure.Test(3), "labeled edge must not be followed")
	})

	t.Run("terminatesOnCycles", func(t *testing.T) {
		aut := build()
		// The cycle means every member closes over the same three states.
		for s := 0; s < 3; s++ {
			assert.Equal(t, uint(3), aut.EpsilonClosure(s).Count())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		aut := build()
		closure := aut.EpsilonClosure(aut.Start())
		for m, ok := closure.NextSet(0); ok; m, ok = closure.NextSet(m + 1) {
			memberClosure := aut.EpsilonClosure(int(m))
			assert.True(t, closure.IsSuperSet(memberClosure))
		}
	})

	t.Run("noEpsilonEdges", func(t *testing.T) {
		b := NewBuilder(NewAlphabet("X"))
		require.Nil(t, b.SetStartState("q0"))
		aut, err := b.Finish()
		require.Nil(t, err)

		closure := aut.EpsilonClosure(aut.Start())
		assert.Equal(t, uint(1), closure.Count())
		assert.True(t, closure.Test(uint(aut.Start())))
	})
}
