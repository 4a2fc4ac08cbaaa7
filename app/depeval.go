package app

import (
	"fmt"
	"log"
	"os"

	"eagerparse/eval"
	"eagerparse/nlp/format/conll"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func DepEvalConfigOut() {
	log.Println("Configuration")
	log.Println()
	log.Println("Data")
	log.Printf("Parsed result file:\t%s", input)
	if !VerifyExists(input) {
		os.Exit(1)
	}
	log.Printf("Gold file:\t\t%s", inputGold)
	if !VerifyExists(inputGold) {
		os.Exit(1)
	}
}

// DepEvalConll scores unlabeled attachment of one sentence. Rows are
// matched by ID; gold rows without a head are not scored.
func DepEvalConll(test, gold conll.Sentence) *eval.Result {
	retval := new(eval.Result)
	testHeads := test.Heads()
	for _, goldRow := range gold {
		if !goldRow.HasHead() {
			continue
		}
		testHead, exists := testHeads[goldRow.ID]
		switch {
		case !exists:
			retval.FN += 1
		case testHead == goldRow.Head:
			retval.TP += 1
		default:
			retval.FP += 1
		}
	}
	return retval
}

// DepEvalCorpus scores sentences pairwise; both sides must hold the same
// number of sentences
func DepEvalCorpus(test, gold conll.Sentences) (*eval.Total, error) {
	if len(test) != len(gold) {
		return nil, fmt.Errorf("evaluation set sizes are different: %d parsed, %d gold", len(test), len(gold))
	}
	total := &eval.Total{
		Results: make([]*eval.Result, 0, len(test)),
	}
	for i, instance := range test {
		if len(instance) != len(gold[i]) {
			return nil, fmt.Errorf("sentence %d: %d parsed tokens, %d gold", i+1, len(instance), len(gold[i]))
		}
		total.Add(DepEvalConll(instance, gold[i]))
	}
	return total, nil
}

func LogTotal(total *eval.Total) {
	log.Println("Result (UAS, UEM #, UEM %): ", total.Precision(), total.Exact, total.ExactMatch(), "TruePos:", total.TP, "in", total.Population)
}

func DepEval(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"p", "g"}

	VerifyFlags(cmd, REQUIRED_FLAGS)
	if allOut {
		DepEvalConfigOut()
	}

	parsed, err := conll.ReadFile(input, 0)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(parsed), "sentences from", input)
	}
	gold, err := conll.ReadFile(inputGold, 0)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(gold), "sentences from", inputGold)
	}
	total, err := DepEvalCorpus(parsed, gold)
	if err != nil {
		log.Fatalln(err)
	}
	LogTotal(total)
	return nil
}

func DepEvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DepEval,
		UsageLine: "depeval <file options> [arguments]",
		Short:     "runs unlabeled dependency eval",
		Long: `
runs unlabeled dependency eval

	$ ./eagerparse depeval -p <conll> -g <conll> [options]

`,
		Flag: *flag.NewFlagSet("depeval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "p", "", "Parse Result Conll File")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold Conll File")
	return cmd
}
