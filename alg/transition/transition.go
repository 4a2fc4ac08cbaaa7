package transition

import (
	"bytes"
	"text/tabwriter"
)

// Transition is an enumerated action of a transition system.
// The zero value means "no transition yet".
type Transition int

const NO_TRANSITION Transition = 0

type Configuration interface {
	Terminal() bool

	Len() int
	Previous() Configuration
	GetSequence() ConfigurationSequence
	GetLastTransition() Transition
	String() string
}

type ConfigurationSequence []Configuration

type TransitionSystem interface {
	Transition(from Configuration, transition Transition) (Configuration, error)
	Valid(from Configuration, transition Transition) bool

	Transitions() []Transition
	TransitionName(Transition) string

	Name() string
}

// A Decision chooses the next transition for a configuration. Oracles
// and external classifiers are both decisions.
type Decision interface {
	Transition(Configuration) Transition
}

type Oracle interface {
	Decision
	SetGold(interface{})
	Name() string
}

// CostOracle scores any transition from any configuration
type CostOracle interface {
	Oracle
	Cost(Configuration, Transition) int
}

// DecisionFunc adapts a plain function to a Decision
type DecisionFunc func(Configuration) Transition

func (f DecisionFunc) Transition(c Configuration) Transition {
	return f(c)
}

// String renders the sequence oldest first; sequences are stored newest
// first, as returned by GetSequence.
func (seq ConfigurationSequence) String() string {
	var buf bytes.Buffer
	w := new(tabwriter.Writer)
	w.Init(&buf, 0, 8, 0, '\t', 0)
	seqLength := len(seq)
	for i := range seq {
		conf := seq[seqLength-i-1]
		w.Write([]byte(conf.String()))
		if i < seqLength-1 {
			w.Write([]byte{'\n'})
		}
	}
	w.Flush()
	return buf.String()
}

// Transitions returns the transitions taken along the sequence, in the
// order they were applied
func (seq ConfigurationSequence) Transitions() []Transition {
	retval := make([]Transition, 0, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		if last := seq[i].GetLastTransition(); last != NO_TRANSITION {
			retval = append(retval, last)
		}
	}
	return retval
}

// SharedTransitions counts the transitions both sequences take before
// they first differ
func (seq ConfigurationSequence) SharedTransitions(other ConfigurationSequence) int {
	left, right := seq.Transitions(), other.Transitions()
	shared := 0
	for shared < len(left) && shared < len(right) && left[shared] == right[shared] {
		shared++
	}
	return shared
}
