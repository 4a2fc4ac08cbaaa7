package transition

import (
	"fmt"

	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

const (
	LEFT_ARC Transition = iota + 1
	RIGHT_ARC
	SHIFT
	REDUCE
)

// ARC_EAGER_TRANSITIONS is the canonical transition order; oracles
// break ties in this order.
var ARC_EAGER_TRANSITIONS = []Transition{LEFT_ARC, RIGHT_ARC, SHIFT, REDUCE}

var transitionNames = map[Transition]string{
	LEFT_ARC:  "LA",
	RIGHT_ARC: "RA",
	SHIFT:     "SH",
	REDUCE:    "RE",
}

func TransitionString(t Transition) string {
	if name, exists := transitionNames[t]; exists {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// ParseTransition accepts the short names used in traces (LA, RA, SH, RE)
func ParseTransition(name string) (Transition, error) {
	for t, tName := range transitionNames {
		if tName == name {
			return t, nil
		}
	}
	return NO_TRANSITION, fmt.Errorf("%w: unknown transition name %q", ErrInvalidTransition, name)
}

// ArcEager is the stateless transition function.
//
// Transition System:
// LA	(S|wi,	wj|B,	A) => (S      ,	wj|B,	A+{(wj,wi)})	if: (wk,wi) notin A; i != 0
// RA	(S|wi,	wj|B,	A) => (S|wi|wj,	   B,	A+{(wi,wj)})
// SH	(S   ,	wi|B, 	A) => (S|wi   ,	   B,	A)
// RE	(S|wi,	   B,	A) => (S      ,	   B,	A)
//
// RE does not require wi to have a head already.
type ArcEager struct{}

// Verify that ArcEager is a TransitionSystem
var _ TransitionSystem = &ArcEager{}

func (a *ArcEager) Transition(from Configuration, transition Transition) (Configuration, error) {
	conf, ok := from.(*SimpleConfiguration)
	if !ok {
		return nil, fmt.Errorf("arc eager can't transition from configuration type %T", from)
	}
	next, err := conf.Apply(transition)
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (a *ArcEager) Valid(from Configuration, transition Transition) bool {
	conf, ok := from.(*SimpleConfiguration)
	return ok && conf.ValidAction(transition)
}

func (a *ArcEager) Transitions() []Transition {
	return append([]Transition(nil), ARC_EAGER_TRANSITIONS...)
}

func (a *ArcEager) TransitionName(t Transition) string {
	return TransitionString(t)
}

func (a *ArcEager) Name() string {
	return "Arc Eager"
}

// Precondition returns the first violated precondition of transition in
// c, or "" when the transition is legal.
func (c *SimpleConfiguration) Precondition(transition Transition) string {
	_, sExists := c.Stack().Peek()
	_, bExists := c.Queue().Peek()
	switch transition {
	case LEFT_ARC:
		if !(sExists && bExists) {
			return "stack and/or buffer are empty"
		}
		s, _ := c.StackTop()
		if s.IsRoot() {
			return "root can't be a dependent"
		}
		if c.Arcs().HasHead(s.ID) {
			return fmt.Sprintf("stack top %d already has a head", s.ID)
		}
	case RIGHT_ARC:
		if !(sExists && bExists) {
			return "stack and/or buffer are empty"
		}
	case SHIFT:
		if !bExists {
			return "buffer is empty"
		}
	case REDUCE:
		if !sExists {
			return "stack is empty"
		}
	default:
		return "unknown transition"
	}
	return ""
}

func (c *SimpleConfiguration) ValidAction(transition Transition) bool {
	return c.Precondition(transition) == ""
}

// Apply returns the configuration reached by taking transition from c.
// An illegal transition fails with an *InvalidTransitionError and c is
// left untouched.
func (c *SimpleConfiguration) Apply(transition Transition) (*SimpleConfiguration, error) {
	if reason := c.Precondition(transition); reason != "" {
		return nil, &InvalidTransitionError{transition, reason}
	}
	conf := c.Copy()
	switch transition {
	case LEFT_ARC:
		wi, _ := conf.Stack().Pop()
		wj, _ := conf.Queue().Peek()
		conf.Arcs().Add(&BasicDepArc{conf.Nodes[wj].ID, conf.Nodes[wi].ID})
	case RIGHT_ARC:
		wi, _ := conf.Stack().Peek()
		wj, _ := conf.Queue().Dequeue()
		conf.Arcs().Add(&BasicDepArc{conf.Nodes[wi].ID, conf.Nodes[wj].ID})
		conf.Stack().Push(wj)
	case SHIFT:
		wi, _ := conf.Queue().Dequeue()
		conf.Stack().Push(wi)
	case REDUCE:
		conf.Stack().Pop()
	}
	conf.Last = transition
	return conf, nil
}

// Derive applies the transitions in order, stopping at the first failure
func Derive(sent nlp.Sentence, transitions []Transition) (*SimpleConfiguration, error) {
	c, err := NewConfiguration(sent)
	if err != nil {
		return nil, err
	}
	for i, transition := range transitions {
		next, err := c.Apply(transition)
		if err != nil {
			return c, fmt.Errorf("transition %d: %w", i, err)
		}
		c = next
	}
	return c, nil
}
