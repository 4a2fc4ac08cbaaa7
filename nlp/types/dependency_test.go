package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bobSawAlice() *BasicGoldTree {
	g := NewBasicGoldTree(4)
	g.AddEdge(0, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	return g
}

func TestGoldTreeHasEdge(t *testing.T) {
	g := bobSawAlice()
	assert.True(t, g.HasEdge(2, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(1, 2), "edges are directed")
	assert.False(t, g.HasEdge(17, -3), "out of range ids are never edges")

	var missing *BasicGoldTree
	assert.False(t, missing.HasEdge(0, 1))

	head, exists := g.Head(3)
	require.True(t, exists)
	assert.Equal(t, 2, head)
	_, exists = g.Head(0)
	assert.False(t, exists)
}

func TestGoldTreeValidate(t *testing.T) {
	require.NoError(t, bobSawAlice().Validate())

	noHead := NewBasicGoldTree(4)
	noHead.AddEdge(2, 1)
	noHead.AddEdge(2, 3)
	err := noHead.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedGoldTree))

	twoHeads := bobSawAlice()
	twoHeads.AddEdge(3, 1)
	assert.ErrorIs(t, twoHeads.Validate(), ErrMalformedGoldTree)

	rootHead := bobSawAlice()
	rootHead.AddEdge(1, 0)
	assert.ErrorIs(t, rootHead.Validate(), ErrMalformedGoldTree)

	outside := bobSawAlice()
	outside.AddEdge(2, 9)
	assert.ErrorIs(t, outside.Validate(), ErrMalformedGoldTree)

	cycle := NewBasicGoldTree(3)
	cycle.AddEdge(2, 1)
	cycle.AddEdge(1, 2)
	assert.ErrorIs(t, cycle.Validate(), ErrMalformedGoldTree)
}

func TestGoldTreeProjective(t *testing.T) {
	assert.True(t, bobSawAlice().IsProjective())

	crossing := NewBasicGoldTree(5)
	crossing.AddEdge(0, 2)
	crossing.AddEdge(2, 4)
	crossing.AddEdge(4, 1)
	crossing.AddEdge(2, 3)
	assert.False(t, crossing.IsProjective())
}

func TestNewSentence(t *testing.T) {
	sent := NewSentence([]string{"Bob", "saw", "Alice"}, []string{"NNP", "VBD", "NNP"})
	require.Len(t, sent, 4)
	assert.True(t, sent.HasRoot())
	assert.Equal(t, Token{0, ROOT_TOKEN, ROOT_POS}, sent[0])
	assert.Equal(t, Token{2, "saw", "VBD"}, sent[2])
	assert.Equal(t, []string{ROOT_TOKEN, "Bob", "saw", "Alice"}, sent.Tokens())
	assert.True(t, sent[3].Equal(Token{3, "Alice", "NNP"}))
}
