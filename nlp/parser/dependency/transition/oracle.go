package transition

import (
	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

// NextGoldAction is the static oracle. It follows the canonical gold
// derivation and is only meaningful while no mistake has been made.
//
// The RE rule is a heuristic: it scans ids below the stack top rather
// than the tokens actually on the stack.
func NextGoldAction(c *SimpleConfiguration, gold nlp.GoldTree) Transition {
	// # http://www.cs.bgu.ac.il/~yoavg/publications/coling2012dynamic.pdf
	// Given Gd=(Vd,Ad) # gold dependencies
	// o(c = (S,B,A)) =
	// LA	if	(B[0],S[0]) in Ad
	// RA	if	(S[0],B[0]) in Ad
	// RE	if	exists k<S[0]: (B[0],k) in Ad or (k,B[0]) in Ad
	// SH	otherwise
	s, sExists := c.StackTop()
	b, bExists := c.BufferHead()
	if sExists && bExists {
		if gold.HasEdge(b.ID, s.ID) {
			return LEFT_ARC
		}
		if gold.HasEdge(s.ID, b.ID) {
			return RIGHT_ARC
		}
		for k := 0; k < s.ID; k++ {
			if gold.HasEdge(k, b.ID) || gold.HasEdge(b.ID, k) {
				return REDUCE
			}
		}
	} else if c.Stack().Size() > 1 {
		return REDUCE
	}
	return SHIFT
}

// ArcEagerOracle adapts NextGoldAction to the Oracle interface
type ArcEagerOracle struct {
	gold nlp.GoldTree
}

var _ Oracle = &ArcEagerOracle{}

func NewArcEagerOracle(gold nlp.GoldTree) *ArcEagerOracle {
	return &ArcEagerOracle{gold}
}

func (o *ArcEagerOracle) SetGold(g interface{}) {
	gold, ok := g.(nlp.GoldTree)
	if !ok {
		panic("Gold is not a GoldTree")
	}
	o.gold = gold
}

func (o *ArcEagerOracle) Transition(conf Configuration) Transition {
	if o.gold == nil {
		panic("Oracle needs gold reference, use SetGold")
	}
	c, ok := conf.(*SimpleConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	return NextGoldAction(c, o.gold)
}

func (o *ArcEagerOracle) Name() string {
	return "Arc Eager Static Oracle"
}
