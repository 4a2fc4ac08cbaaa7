package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"eagerparse/alg/search"
	"eagerparse/alg/transition"
	"eagerparse/nlp/format/conll"
	dep "eagerparse/nlp/parser/dependency/transition"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const INFEASIBLE_STR = "inf"

var COSTS_HEADER = []string{"sent", "step", "stack", "buffer", "LA", "RA", "SH", "RE", "chosen"}

func formatCost(cost int) string {
	if cost == dep.INFEASIBLE {
		return INFEASIBLE_STR
	}
	return strconv.Itoa(cost)
}

// WriteCosts derives every sentence with the chosen policy and writes one
// TSV row per step: the dynamic oracle cost of each transition at the
// configuration and the transition that was taken.
func WriteCosts(writer io.Writer, sents conll.Sentences, opts ParseOptions) error {
	bufWriter := bufio.NewWriter(writer)
	if _, err := bufWriter.WriteString(strings.Join(COSTS_HEADER, "\t") + "\n"); err != nil {
		return err
	}
	var writeErr error
	for i, sent := range sents {
		gold := sent.GoldTree()
		costOracle := dep.NewDynamicOracle(gold)
		policyOracle, err := NewPolicy(opts.Policy, gold, opts.Explore, opts.Seed+int64(i))
		if err != nil {
			return err
		}
		c, err := dep.NewConfiguration(sent.Tokens())
		if err != nil {
			return fmt.Errorf("sentence %d: %w", i+1, err)
		}
		d := &search.Deterministic{
			TransFunc:       &dep.ArcEager{},
			ShowTransitions: opts.Show,
			MaxSteps:        opts.MaxSteps,
			Observe: func(step int, conf transition.Configuration, t transition.Transition) {
				if writeErr != nil {
					return
				}
				simple := conf.(*dep.SimpleConfiguration)
				var stackTop, bufferHead string
				if s, exists := simple.StackTop(); exists {
					stackTop = s.Word
				}
				if b, exists := simple.BufferHead(); exists {
					bufferHead = b.Word
				}
				fields := []string{strconv.Itoa(i + 1), strconv.Itoa(step), stackTop, bufferHead}
				costs := costOracle.Costs(conf)
				for _, candidate := range dep.ARC_EAGER_TRANSITIONS {
					fields = append(fields, formatCost(costs[candidate]))
				}
				fields = append(fields, dep.TransitionString(t))
				_, writeErr = bufWriter.WriteString(strings.Join(fields, "\t") + "\n")
			},
		}
		if _, err := d.Parse(c, policyOracle); err != nil {
			log.Printf("Sentence %d: %v", i+1, err)
		}
		if writeErr != nil {
			return writeErr
		}
	}
	return bufWriter.Flush()
}

func Costs(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"f"}
	sents := setupParse(cmd, REQUIRED_FLAGS, &outCosts)

	var writer io.Writer = os.Stdout
	if outCosts != "" {
		file, err := os.Create(outCosts)
		if err != nil {
			log.Fatalln("Failed creating costs file", outCosts, err)
		}
		defer file.Close()
		writer = file
		log.Println("Writing to", outCosts)
	}
	if err := WriteCosts(writer, sents, parseOptions()); err != nil {
		log.Fatalln(err)
	}
	return nil
}

func CostsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Costs,
		UsageLine: "costs <file options> [arguments]",
		Short:     "dump dynamic oracle costs along a derivation",
		Long: `
dump dynamic oracle costs along a derivation

	$ ./eagerparse costs -f <conll> [-out <tsv>] [-policy static|dynamic|explore] [options]

Writes one tab separated row per transition with the cost of LA, RA, SH
and RE at the configuration it was taken from; illegal transitions are
written as inf.

`,
		Flag: *flag.NewFlagSet("costs", flag.ExitOnError),
	}
	addParseFlags(cmd)
	cmd.Flag.StringVar(&outCosts, "out", "", "Output TSV File (default stdout)")
	return cmd
}
