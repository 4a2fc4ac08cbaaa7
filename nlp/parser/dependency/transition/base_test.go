package transition

import (
	"math/rand"

	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

var TEST_SENT nlp.Sentence = nlp.NewSentence(
	[]string{"Economic", "news", "had", "little", "effect", "on", "financial", "markets", "."},
	[]string{"NN", "NN", "VB", "ADJ", "NN", "NN", "NN", "NN", "yyDOT"},
)

var rawArcs [][2]int = [][2]int{
	{2, 1},
	{3, 2},
	{0, 3},
	{5, 4},
	{3, 5},
	{5, 6},
	{8, 7},
	{6, 8},
	{3, 9},
}

var TEST_EAGER_TRANSITIONS []string = []string{
	"SH",
	"LA",
	"SH",
	"LA",
	"RA",
	"SH",
	"LA",
	"RA",
	"RA",
	"SH",
	"LA",
	"RA",
	"RE",
	"RE",
	"RE",
	"RA",
	"RE",
	"RE"}

var BOB_SENT nlp.Sentence = nlp.NewSentence(
	[]string{"Bob", "saw", "Alice"},
	[]string{"NNP", "VBD", "NNP"},
)

func GetTestGoldTree() *nlp.BasicGoldTree {
	g := nlp.NewBasicGoldTree(len(TEST_SENT))
	for _, arc := range rawArcs {
		g.AddEdge(arc[0], arc[1])
	}
	return g
}

func GetBobGoldTree(withRoot bool) *nlp.BasicGoldTree {
	g := nlp.NewBasicGoldTree(len(BOB_SENT))
	if withRoot {
		g.AddEdge(0, 2)
	}
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	return g
}

func parseTransitions(names []string) []Transition {
	retval := make([]Transition, len(names))
	for i, name := range names {
		t, err := ParseTransition(name)
		if err != nil {
			panic(err)
		}
		retval[i] = t
	}
	return retval
}

func namesOf(transitions []Transition) []string {
	retval := make([]string, len(transitions))
	for i, t := range transitions {
		retval[i] = TransitionString(t)
	}
	return retval
}

// randomProjective builds a projective tree over numNodes nodes (root
// included); the root may have several children.
func randomProjective(r *rand.Rand, numNodes int) (nlp.Sentence, *nlp.BasicGoldTree) {
	words := make([]string, numNodes-1)
	for i := range words {
		words[i] = string(rune('a' + i%26))
	}
	sent := nlp.NewSentence(words, nil)
	g := nlp.NewBasicGoldTree(numNodes)
	var build func(lo, hi, head int)
	build = func(lo, hi, head int) {
		if lo > hi {
			return
		}
		mid := lo + r.Intn(hi-lo+1)
		g.AddEdge(head, mid)
		build(lo, mid-1, mid)
		build(mid+1, hi, mid)
	}
	for i := 1; i < numNodes; {
		j := i + r.Intn(numNodes-i)
		build(i, j, nlp.ROOT_ID)
		i = j + 1
	}
	return sent, g
}

// walk follows the decision from the initial configuration and returns
// every configuration reached, the initial one first
func walk(sent nlp.Sentence, decide func(*SimpleConfiguration) Transition) ([]*SimpleConfiguration, error) {
	c, err := NewConfiguration(sent)
	if err != nil {
		return nil, err
	}
	confs := []*SimpleConfiguration{c}
	for !c.Terminal() {
		next, err := c.Apply(decide(c))
		if err != nil {
			return confs, err
		}
		c = next
		confs = append(confs, c)
	}
	return confs, nil
}
