package transition

import (
	"math/rand"
	"reflect"
	"testing"

	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

func costsOf(c *SimpleConfiguration, gold nlp.GoldTree) []int {
	retval := make([]int, len(ARC_EAGER_TRANSITIONS))
	for i, transition := range ARC_EAGER_TRANSITIONS {
		retval[i] = Cost(c, transition, gold)
	}
	return retval
}

type costTest struct {
	name        string
	transitions []Transition
	gold        nlp.GoldTree
	expected    []int // LA, RA, SH, RE
}

func TestCostExamples(t *testing.T) {
	gold := GetBobGoldTree(true)
	// gold head of "Bob" is further in the buffer than "saw"
	headFurther := nlp.NewBasicGoldTree(4)
	headFurther.AddEdge(0, 3)
	headFurther.AddEdge(3, 1)
	headFurther.AddEdge(3, 2)
	var tests = []costTest{
		{"initial", nil, gold, []int{INFEASIBLE, 1, 0, 1}},
		{"Bob on stack", []Transition{SHIFT}, gold, []int{0, 2, 2, 0}},
		{"saw on stack", []Transition{SHIFT, SHIFT}, gold, []int{0, 0, 1, 1}},
		{"empty buffer", []Transition{SHIFT, SHIFT, SHIFT}, gold, []int{INFEASIBLE, INFEASIBLE, INFEASIBLE, 0}},
		{"head further in buffer", []Transition{SHIFT}, headFurther, []int{1, 1, 0, 0}},
	}
	for _, test := range tests {
		c, err := Derive(BOB_SENT, test.transitions)
		if err != nil {
			t.Fatal(test.name, err)
		}
		if costs := costsOf(c, test.gold); !reflect.DeepEqual(costs, test.expected) {
			t.Errorf("%s: expected costs %v got %v", test.name, test.expected, costs)
		}
	}
}

func TestCostLeftArcAfterLostHead(t *testing.T) {
	// "Bob" is reduced without a head, then "saw" is shifted; the gold
	// head of "saw" (root) is not in the buffer so LA loses nothing
	gold := GetBobGoldTree(true)
	c, err := Derive(BOB_SENT, []Transition{SHIFT, REDUCE, SHIFT})
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := c.StackTop(); s.ID != 2 {
		t.Fatal("Expected saw on the stack, got", c)
	}
	if cost := Cost(c, LEFT_ARC, gold); cost != 0 {
		t.Error("Expected LA to cost 0 once the gold head is gone, got", cost)
	}
}

func TestCostInfeasibleIffIllegal(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		sent, gold := randomProjective(r, 2+r.Intn(8))
		c, _ := NewConfiguration(sent)
		for !c.Terminal() {
			legal := make([]Transition, 0, 4)
			for _, transition := range ARC_EAGER_TRANSITIONS {
				cost := Cost(c, transition, gold)
				if (cost == INFEASIBLE) == c.ValidAction(transition) {
					t.Fatalf("Cost %d for %s does not match validity at %s", cost, TransitionString(transition), c)
				}
				if cost != INFEASIBLE {
					if cost < 0 || cost > 2*len(sent) {
						t.Fatalf("Cost %d out of range", cost)
					}
					legal = append(legal, transition)
				}
			}
			if len(legal) == 0 {
				break
			}
			c, _ = c.Apply(legal[r.Intn(len(legal))])
		}
	}
}

func TestCostZeroOnCanonicalPath(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 300; trial++ {
		sent, gold := randomProjective(r, 2+r.Intn(14))
		c, _ := NewConfiguration(sent)
		for !c.Terminal() {
			transition := NextGoldAction(c, gold)
			if cost := Cost(c, transition, gold); cost != 0 {
				t.Fatalf("Static oracle chose %s with cost %d at %s", TransitionString(transition), cost, c)
			}
			c, _ = c.Apply(transition)
		}
	}
	c, _ := NewConfiguration(TEST_SENT)
	gold := GetTestGoldTree()
	for !c.Terminal() {
		transition := NextGoldAction(c, gold)
		if cost := Cost(c, transition, gold); cost != 0 {
			t.Fatalf("Static oracle chose %s with cost %d at %s", TransitionString(transition), cost, c)
		}
		c, _ = c.Apply(transition)
	}
}

func TestDynamicOracle(t *testing.T) {
	gold := GetTestGoldTree()
	oracle := NewDynamicOracle(gold)
	c, _ := NewConfiguration(TEST_SENT)
	if zero := namesOf(oracle.ZeroCost(c)); !reflect.DeepEqual(zero, []string{"SH"}) {
		t.Error("Expected only SH to be optimal initially, got", zero)
	}
	costs := oracle.Costs(c)
	if costs[LEFT_ARC] != INFEASIBLE || costs[SHIFT] != 0 || oracle.Cost(c, REDUCE) != costs[REDUCE] {
		t.Error("Unexpected costs", costs)
	}
	for !c.Terminal() {
		c, _ = c.Apply(oracle.Transition(c))
	}
	if !NewArcSetSimpleFromGold(TEST_SENT, gold).Equal(c.Arcs()) {
		t.Error("Dynamic oracle did not rebuild the gold tree, got", c.Arcs())
	}

	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		sent, gold := randomProjective(r, 2+r.Intn(14))
		oracle.SetGold(gold)
		c, _ := NewConfiguration(sent)
		for !c.Terminal() {
			c, _ = c.Apply(oracle.Transition(c))
		}
		if !NewArcSetSimpleFromGold(sent, gold).Equal(c.Arcs()) {
			t.Fatalf("Dynamic oracle did not rebuild gold tree %v, got %v", gold.SortedEdges(), c.Arcs())
		}
	}
}

func TestDynamicOracleNoLegalTransition(t *testing.T) {
	c, _ := Derive(BOB_SENT, []Transition{SHIFT, SHIFT, SHIFT, REDUCE, REDUCE, REDUCE, REDUCE})
	if c == nil || c.Stack().Size() != 0 || c.Queue().Size() != 0 {
		t.Fatal("Expected an empty configuration, got", c)
	}
	if transition := NewDynamicOracle(GetBobGoldTree(true)).Transition(c); transition != NO_TRANSITION {
		t.Error("Expected no transition, got", TransitionString(transition))
	}
}

func TestExploringOracle(t *testing.T) {
	gold := GetTestGoldTree()
	run := func(seed int64) []string {
		oracle := NewExploringOracle(gold, 0.5, seed)
		c, _ := NewConfiguration(TEST_SENT)
		for !c.Terminal() {
			next, err := c.Apply(oracle.Transition(c))
			if err != nil {
				t.Fatal(err)
			}
			c = next
		}
		return namesOf(c.GetSequence().Transitions())
	}
	first, second := run(11), run(11)
	if !reflect.DeepEqual(first, second) {
		t.Error("Same seed produced different derivations", first, second)
	}
	if len(first) > 2*(len(TEST_SENT)-1) {
		t.Error("Exploration exceeded 2n transitions:", len(first))
	}

	greedy := NewExploringOracle(gold, 0, 1)
	c, _ := NewConfiguration(TEST_SENT)
	for !c.Terminal() {
		c, _ = c.Apply(greedy.Transition(c))
	}
	if names := namesOf(c.GetSequence().Transitions()); !reflect.DeepEqual(names, TEST_EAGER_TRANSITIONS) {
		t.Error("Exploration probability 0 should follow the optimal path, got", names)
	}
}
