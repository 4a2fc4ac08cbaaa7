package search

import (
	"errors"
	"fmt"
	"log"

	"eagerparse/alg/transition"
)

var SHOW_ORACLE = false

var ErrNoTransition = errors.New("decision returned no transition")

// Deterministic drives a configuration to a terminal state, taking at
// every step the single transition chosen by a decision.
type Deterministic struct {
	TransFunc       transition.TransitionSystem
	ShowTransitions bool
	// MaxSteps bounds the number of transitions; 0 means no bound
	MaxSteps int
	// Observe, if set, is called before each transition is applied
	Observe func(step int, c transition.Configuration, t transition.Transition)
}

// Parse runs the deterministic parsing algorithm from c. Every transition
// goes through the transition system, so an illegal decision stops the
// parse with an error wrapping the system's error. The last configuration
// reached is returned alongside any error.
func (d *Deterministic) Parse(c transition.Configuration, decision transition.Decision) (transition.Configuration, error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	if decision == nil {
		panic("Can't parse without a decision")
	}
	verbose := d.ShowTransitions || SHOW_ORACLE
	if verbose {
		log.Println(c.String())
	}
	for step := 0; !c.Terminal(); step++ {
		if d.MaxSteps > 0 && step >= d.MaxSteps {
			return c, fmt.Errorf("%s: no terminal configuration after %d transitions", d.TransFunc.Name(), step)
		}
		t := decision.Transition(c)
		if t == transition.NO_TRANSITION {
			return c, fmt.Errorf("step %d: %w", step, ErrNoTransition)
		}
		if d.Observe != nil {
			d.Observe(step, c, t)
		}
		next, err := d.TransFunc.Transition(c, t)
		if err != nil {
			return c, fmt.Errorf("step %d: %w", step, err)
		}
		c = next
		if verbose {
			log.Println(c.String())
		}
	}
	return c, nil
}

// ParseOracle sets the oracle's gold reference and parses with it
func (d *Deterministic) ParseOracle(c transition.Configuration, oracle transition.Oracle, gold interface{}) (transition.Configuration, error) {
	oracle.SetGold(gold)
	return d.Parse(c, oracle)
}
