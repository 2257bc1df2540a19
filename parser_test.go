package automata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	alphabet := NewAlphabet("k", "t")

	t.Run("wellFormed", func(t *testing.T) {
		src := `
(START) |- q0
q0 k q1
q1 t q2
q1 $ q2
q2 -| (FINAL)
`
		aut, err := Parse(strings.NewReader(src), alphabet)
		require.Nil(t, err)
		assert.Equal(t, 3, aut.NumStates())

		example, ok := aut.ShortestExample(true)
		assert.True(t, ok)
		assert.Equal(t, "k", example, "the epsilon edge makes q2 reachable after k")
	})

	t.Run("linesInAnyOrder", func(t *testing.T) {
		src := "q1 -| (FINAL)\nq0 k q1\n(START) |- q0\n"
		aut, err := Parse(strings.NewReader(src), alphabet)
		require.Nil(t, err)

		example, ok := aut.ShortestExample(true)
		assert.True(t, ok)
		assert.Equal(t, "k", example)
	})

	t.Run("missingStartLine", func(t *testing.T) {
		_, err := Parse(strings.NewReader("q0 k q1\n"), alphabet)
		assert.ErrorIs(t, err, ErrNoStartState)
	})

	t.Run("unknownLabel", func(t *testing.T) {
		src := "(START) |- q0\nq0 z q1\n"
		_, err := Parse(strings.NewReader(src), alphabet)
		assert.ErrorIs(t, err, ErrUnknownSymbol)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("malformedLine", func(t *testing.T) {
		for _, src := range []string{
			"(START) |- q0 q1\n",
			"q0 q1\n",
			"(START) -| q0\n",
			"q0 |- (FINAL)\n",
		} {
			_, err := Parse(strings.NewReader(src), alphabet)
			assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", src)
		}
	})

	t.Run("fromFile", func(t *testing.T) {
		aut, err := ParseFile("testdata/treasure.aut", alphabet)
		require.Nil(t, err)

		example, ok := aut.ShortestExample(true)
		assert.True(t, ok)
		assert.Equal(t, "kt", example)
	})

	t.Run("missingFile", func(t *testing.T) {
		_, err := ParseFile("testdata/nope.aut", alphabet)
		assert.NotNil(t, err)
	})
}
