package app

import (
	"fmt"
	"log"
	"sync"

	"eagerparse/alg/search"
	"eagerparse/alg/transition"
	"eagerparse/nlp/format/conll"
	dep "eagerparse/nlp/parser/dependency/transition"
	nlp "eagerparse/nlp/types"
	"eagerparse/util"
)

// NewPolicy returns the oracle that picks transitions for one sentence.
// The explore policy is seeded so a run can be repeated exactly.
func NewPolicy(name string, gold nlp.GoldTree, p float64, seed int64) (transition.Oracle, error) {
	switch name {
	case POLICY_STATIC, "":
		return dep.NewArcEagerOracle(gold), nil
	case POLICY_DYNAMIC:
		return dep.NewDynamicOracle(gold), nil
	case POLICY_EXPLORE:
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("exploration probability %v not in [0,1]", p)
		}
		return dep.NewExploringOracle(gold, p, seed), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

type ParseOptions struct {
	Policy   string
	Explore  float64
	Seed     int64
	Jobs     int
	MaxSteps int
	Show     bool
}

// Parsed is the outcome of deriving one sentence. When Err is set, Heads
// and Transitions reflect the configuration reached before the failure.
type Parsed struct {
	Heads       map[int]int
	Transitions []transition.Transition
	Sequence    transition.ConfigurationSequence
	Err         error
}

// ParseSentence derives sent with the chosen policy, using its HEAD
// column as the gold tree
func ParseSentence(sent conll.Sentence, opts ParseOptions, seed int64) *Parsed {
	oracle, err := NewPolicy(opts.Policy, sent.GoldTree(), opts.Explore, seed)
	if err != nil {
		return &Parsed{Err: err}
	}
	c, err := dep.NewConfiguration(sent.Tokens())
	if err != nil {
		return &Parsed{Err: err}
	}
	d := &search.Deterministic{
		TransFunc:       &dep.ArcEager{},
		ShowTransitions: opts.Show,
		MaxSteps:        opts.MaxSteps,
	}
	result, err := d.Parse(c, oracle)
	final := result.(*dep.SimpleConfiguration)
	sequence := final.GetSequence()
	return &Parsed{
		Heads:       final.Heads(),
		Transitions: sequence.Transitions(),
		Sequence:    sequence,
		Err:         err,
	}
}

// ParseCorpus derives every sentence, running up to opts.Jobs sentences
// at once. Results are in input order; sentence i of the explore policy
// is seeded with opts.Seed+i.
func ParseCorpus(sents conll.Sentences, opts ParseOptions) []*Parsed {
	jobs := util.MinInt(opts.Jobs, len(sents))
	if jobs <= 0 {
		jobs = 1
	}
	results := make([]*Parsed, len(sents))
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	for i, sent := range sents {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sent conll.Sentence) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = ParseSentence(sent, opts, opts.Seed+int64(i))
		}(i, sent)
	}
	wg.Wait()
	return results
}

// Predictions attaches the predicted heads to the input rows
func Predictions(sents conll.Sentences, parsed []*Parsed) conll.Sentences {
	retval := make(conll.Sentences, len(sents))
	for i, sent := range sents {
		var heads map[int]int
		if parsed[i] != nil {
			heads = parsed[i].Heads
			if parsed[i].Err != nil {
				log.Printf("Sentence %d: %v", i+1, parsed[i].Err)
			}
		}
		retval[i] = sent.WithHeads(heads)
	}
	return retval
}

// StaticAgreement derives every sentence with the static oracle and counts
// the transitions parsed takes before it first leaves that derivation.
// total is the length of the static derivations.
func StaticAgreement(sents conll.Sentences, parsed []*Parsed) (shared, total int) {
	for i, sent := range sents {
		static := ParseSentence(sent, ParseOptions{Policy: POLICY_STATIC}, 0)
		total += len(static.Transitions)
		if parsed[i] != nil && parsed[i].Sequence != nil {
			shared += parsed[i].Sequence.SharedTransitions(static.Sequence)
		}
	}
	return shared, total
}
