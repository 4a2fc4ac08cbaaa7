package transition

import (
	"math/rand"
	"reflect"
	"testing"

	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

func staticWalk(t *testing.T, sent nlp.Sentence, gold nlp.GoldTree) []*SimpleConfiguration {
	confs, err := walk(sent, func(c *SimpleConfiguration) Transition {
		return NextGoldAction(c, gold)
	})
	if err != nil {
		t.Fatal("Static oracle derivation failed:", err)
	}
	return confs
}

func TestArcEagerOracle(t *testing.T) {
	goldGraph := GetTestGoldTree()
	oracle := new(ArcEagerOracle)
	oracle.SetGold(goldGraph)

	c, _ := NewConfiguration(TEST_SENT)
	for i, expected := range parseTransitions(TEST_EAGER_TRANSITIONS) {
		transition := oracle.Transition(c)
		if transition != expected {
			t.Fatal("Oracle failed at transition", i, "expected", TransitionString(expected), "got", TransitionString(transition))
		}
		next, err := c.Apply(transition)
		if err != nil {
			t.Fatal(err)
		}
		c = next
	}
	if !c.Terminal() {
		t.Error("Configuration should be terminal at end of expected transition sequence")
	}
	expectedArcSet := NewArcSetSimpleFromGold(TEST_SENT, goldGraph)
	if !expectedArcSet.Equal(c.Arcs()) {
		t.Error("Oracle/Gold parsing resulted in wrong dependency graph", c.Arcs())
	}
}

func TestOracleBobSawAlice(t *testing.T) {
	// with the root edge in the gold tree, RA attaches "saw" to the root
	confs := staticWalk(t, BOB_SENT, GetBobGoldTree(true))
	last := confs[len(confs)-1]
	if names := namesOf(last.GetSequence().Transitions()); !reflect.DeepEqual(names, []string{"SH", "LA", "RA", "RA", "RE", "RE"}) {
		t.Error("Unexpected trace", names)
	}
	if !reflect.DeepEqual(last.Heads(), map[int]int{1: 2, 2: 0, 3: 2}) {
		t.Error("Unexpected heads", last.Heads())
	}
	if !last.Arcs().HasArc(0, 2) {
		t.Error("Expected root arc to be produced")
	}

	// without it, "saw" is shifted and never attached; its head defaults to 0
	confs = staticWalk(t, BOB_SENT, GetBobGoldTree(false))
	last = confs[len(confs)-1]
	if names := namesOf(last.GetSequence().Transitions()); !reflect.DeepEqual(names, []string{"SH", "LA", "SH", "RA", "RE", "RE"}) {
		t.Error("Unexpected trace", names)
	}
	expectedArcs := NewArcSetSimple(2)
	expectedArcs.Add(&BasicDepArc{2, 1})
	expectedArcs.Add(&BasicDepArc{2, 3})
	if !expectedArcs.Equal(last.Arcs()) {
		t.Error("Expected arcs {(2,1),(2,3)}, got", last.Arcs())
	}
	if head := last.Heads()[2]; head != 0 {
		t.Error("Expected unattached token to default to head 0, got", head)
	}
}

func TestOracleReduceHeuristic(t *testing.T) {
	// "b" (3) is headed by "a" (1), which is buried under "x" (2)
	sent := nlp.NewSentence([]string{"a", "x", "b"}, nil)
	gold := nlp.NewBasicGoldTree(4)
	gold.AddEdge(0, 1)
	gold.AddEdge(1, 2)
	gold.AddEdge(1, 3)
	c, err := Derive(sent, []Transition{RIGHT_ARC, RIGHT_ARC})
	if err != nil {
		t.Fatal(err)
	}
	if transition := NextGoldAction(c, gold); transition != REDUCE {
		t.Error("Expected RE to expose the head of the buffer token, got", TransitionString(transition))
	}
}

func TestOracleEmptyStates(t *testing.T) {
	gold := GetBobGoldTree(true)
	emptyBuffer, _ := Derive(BOB_SENT, []Transition{SHIFT, SHIFT, SHIFT})
	if transition := NextGoldAction(emptyBuffer, gold); transition != REDUCE {
		t.Error("Expected RE with an empty buffer, got", TransitionString(transition))
	}
	emptyStack, _ := Derive(BOB_SENT, []Transition{REDUCE})
	if transition := NextGoldAction(emptyStack, gold); transition != SHIFT {
		t.Error("Expected SH with an empty stack, got", TransitionString(transition))
	}
}

func TestOracleRandomProjective(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 300; trial++ {
		numNodes := 2 + r.Intn(14)
		sent, gold := randomProjective(r, numNodes)
		confs := staticWalk(t, sent, gold)
		last := confs[len(confs)-1]
		if steps := len(confs) - 1; steps > 2*(numNodes-1) {
			t.Fatalf("Derivation of %d tokens took %d transitions", numNodes-1, steps)
		}
		if !NewArcSetSimpleFromGold(sent, gold).Equal(last.Arcs()) {
			t.Fatalf("Static oracle did not rebuild gold tree %v, got %v", gold.SortedEdges(), last.Arcs())
		}
	}
}

func TestArcEagerOracleRequiresGold(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected oracle without gold to panic")
		}
	}()
	c, _ := NewConfiguration(BOB_SENT)
	new(ArcEagerOracle).Transition(c)
}
