package transition

import (
	"math"
	"math/rand"

	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

// INFEASIBLE is the cost of an illegal transition. It is larger than any
// count of lost gold arcs.
const INFEASIBLE = math.MaxInt

// Cost is the dynamic oracle: the number of gold arcs that become
// unreachable by taking transition from c. It is defined for any
// configuration, including ones that already diverged from the gold
// derivation. A zero cost keeps every still reachable gold arc reachable.
func Cost(c *SimpleConfiguration, transition Transition, gold nlp.GoldTree) int {
	if !c.ValidAction(transition) {
		return INFEASIBLE
	}
	var loss int
	switch transition {
	case LEFT_ARC:
		s, _ := c.StackTop()
		b, _ := c.BufferHead()
		if gold.HasEdge(b.ID, s.ID) {
			return 0
		}
		// the gold head of s was lost by an earlier mistake, popping
		// s loses nothing more
		if !c.anyInBuffer(func(k nlp.Token) bool { return gold.HasEdge(k.ID, s.ID) }) {
			return 0
		}
		loss = c.countInBuffer(func(k nlp.Token) bool {
			return gold.HasEdge(k.ID, s.ID) || gold.HasEdge(s.ID, k.ID)
		})
	case RIGHT_ARC:
		s, _ := c.StackTop()
		b, _ := c.BufferHead()
		if gold.HasEdge(s.ID, b.ID) {
			return 0
		}
		headOfB := func(k nlp.Token) bool { return gold.HasEdge(k.ID, b.ID) }
		loss = c.countInBuffer(headOfB) + c.countInStack(headOfB)
		loss += c.countInStack(func(k nlp.Token) bool { return gold.HasEdge(b.ID, k.ID) })
	case SHIFT:
		b, _ := c.BufferHead()
		loss = c.countInStack(func(k nlp.Token) bool {
			return gold.HasEdge(k.ID, b.ID) || gold.HasEdge(b.ID, k.ID)
		})
	case REDUCE:
		s, _ := c.StackTop()
		loss = c.countInBuffer(func(k nlp.Token) bool { return gold.HasEdge(s.ID, k.ID) })
	}
	return loss
}

func (c *SimpleConfiguration) countInStack(pred func(nlp.Token) bool) int {
	var count int
	for i := 0; i < c.Stack().Size(); i++ {
		pos, _ := c.Stack().Index(i)
		if pred(c.Nodes[pos]) {
			count++
		}
	}
	return count
}

func (c *SimpleConfiguration) countInBuffer(pred func(nlp.Token) bool) int {
	var count int
	for i := 0; i < c.Queue().Size(); i++ {
		pos, _ := c.Queue().Index(i)
		if pred(c.Nodes[pos]) {
			count++
		}
	}
	return count
}

func (c *SimpleConfiguration) anyInBuffer(pred func(nlp.Token) bool) bool {
	for i := 0; i < c.Queue().Size(); i++ {
		pos, _ := c.Queue().Index(i)
		if pred(c.Nodes[pos]) {
			return true
		}
	}
	return false
}

// DynamicOracle follows the cheapest legal transition, preferring the
// canonical order on ties.
type DynamicOracle struct {
	gold nlp.GoldTree
}

var _ CostOracle = &DynamicOracle{}

func NewDynamicOracle(gold nlp.GoldTree) *DynamicOracle {
	return &DynamicOracle{gold}
}

func (o *DynamicOracle) SetGold(g interface{}) {
	gold, ok := g.(nlp.GoldTree)
	if !ok {
		panic("Gold is not a GoldTree")
	}
	o.gold = gold
}

func (o *DynamicOracle) Name() string {
	return "Arc Eager Dynamic Oracle"
}

func (o *DynamicOracle) conf(conf Configuration) *SimpleConfiguration {
	if o.gold == nil {
		panic("Oracle needs gold reference, use SetGold")
	}
	c, ok := conf.(*SimpleConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	return c
}

func (o *DynamicOracle) Cost(conf Configuration, transition Transition) int {
	return Cost(o.conf(conf), transition, o.gold)
}

// Costs scores every arc-eager transition, illegal ones included
func (o *DynamicOracle) Costs(conf Configuration) map[Transition]int {
	c := o.conf(conf)
	costs := make(map[Transition]int, len(ARC_EAGER_TRANSITIONS))
	for _, transition := range ARC_EAGER_TRANSITIONS {
		costs[transition] = Cost(c, transition, o.gold)
	}
	return costs
}

// ZeroCost lists the optimal transitions in canonical order; these are the
// training targets at conf.
func (o *DynamicOracle) ZeroCost(conf Configuration) []Transition {
	c := o.conf(conf)
	retval := make([]Transition, 0, len(ARC_EAGER_TRANSITIONS))
	for _, transition := range ARC_EAGER_TRANSITIONS {
		if Cost(c, transition, o.gold) == 0 {
			retval = append(retval, transition)
		}
	}
	return retval
}

// Transition returns NO_TRANSITION only when no transition is legal
func (o *DynamicOracle) Transition(conf Configuration) Transition {
	c := o.conf(conf)
	best, bestCost := NO_TRANSITION, INFEASIBLE
	for _, transition := range ARC_EAGER_TRANSITIONS {
		if cost := Cost(c, transition, o.gold); cost < bestCost {
			best, bestCost = transition, cost
		}
	}
	return best
}

// ExploringOracle takes a uniformly random legal transition with
// probability P and otherwise defers to the dynamic oracle. It lets
// training visit configurations off the gold path.
type ExploringOracle struct {
	*DynamicOracle
	P    float64
	Rand *rand.Rand
}

var _ CostOracle = &ExploringOracle{}

func NewExploringOracle(gold nlp.GoldTree, p float64, seed int64) *ExploringOracle {
	return &ExploringOracle{NewDynamicOracle(gold), p, rand.New(rand.NewSource(seed))}
}

func (o *ExploringOracle) Name() string {
	return "Arc Eager Exploring Oracle"
}

func (o *ExploringOracle) Transition(conf Configuration) Transition {
	c := o.conf(conf)
	if o.P > 0 && o.Rand.Float64() < o.P {
		legal := make([]Transition, 0, len(ARC_EAGER_TRANSITIONS))
		for _, transition := range ARC_EAGER_TRANSITIONS {
			if c.ValidAction(transition) {
				legal = append(legal, transition)
			}
		}
		if len(legal) > 0 {
			return legal[o.Rand.Intn(len(legal))]
		}
	}
	return o.DynamicOracle.Transition(conf)
}
