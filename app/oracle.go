package app

import (
	"log"
	"os"
	"time"

	"eagerparse/alg/search"
	"eagerparse/nlp/format/conll"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func OracleConfigOut(output string) {
	log.Println("Configuration")
	log.Printf("Policy:\t\t\t%s", policy)
	if policy == POLICY_EXPLORE {
		log.Printf("Exploration:\t\t%v", explore)
		log.Printf("Seed:\t\t\t%d", seed)
	}
	log.Printf("Jobs:\t\t\t%d", Jobs)
	if maxSteps > 0 {
		log.Printf("Max Transitions:\t%d", maxSteps)
	}
	log.Printf("CPUs:\t\t\t%d", CPUs)
	log.Println()
	log.Println("Data")
	log.Printf("Input:\t\t\t%s", input)
	if !VerifyExists(input) {
		os.Exit(1)
	}
	if limit > 0 {
		log.Printf("Limit:\t\t\t%d", limit)
	}
	if output != "" {
		log.Printf("Output:\t\t\t%s", output)
	}
	log.Println()
}

// setupParse loads the run file, validates the flags and reads the input
// corpus shared by the oracle and costs commands
func setupParse(cmd *commander.Command, required []string, output *string) conll.Sentences {
	LoadConf(cmd)
	VerifyFlags(cmd, required)
	if err := RunConf().Validate(); err != nil {
		log.Fatalln(err)
	}
	search.SHOW_ORACLE = showOracle
	if allOut {
		OracleConfigOut(*output)
	}
	sents, err := conll.ReadFile(input, limit)
	if err != nil {
		log.Println("Failed reading conll file:", input)
		log.Fatalln(err)
	}
	if allOut {
		log.Println("Read", len(sents), "sentences from", input)
	}
	return sents
}

func parseOptions() ParseOptions {
	return ParseOptions{
		Policy:   policy,
		Explore:  explore,
		Seed:     seed,
		Jobs:     Jobs,
		MaxSteps: maxSteps,
		Show:     showOracle,
	}
}

func Oracle(cmd *commander.Command, args []string) error {
	REQUIRED_FLAGS := []string{"f", "out"}
	sents := setupParse(cmd, REQUIRED_FLAGS, &outConll)

	start := time.Now()
	parsed := ParseCorpus(sents, parseOptions())
	predicted := Predictions(sents, parsed)
	if allOut {
		log.Println("Derived", len(parsed), "sentences in", time.Since(start))
	}

	log.Println("Writing to", outConll)
	if err := conll.WriteFile(outConll, predicted); err != nil {
		log.Fatalln(err)
	}

	total, err := DepEvalCorpus(predicted, sents)
	if err != nil {
		log.Fatalln(err)
	}
	LogTotal(total)
	if policy != POLICY_STATIC {
		shared, staticTotal := StaticAgreement(sents, parsed)
		log.Println("Transitions shared with the static derivation before divergence:", shared, "of", staticTotal)
	}
	return nil
}

func addParseFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&input, "f", "", "Input Conll File (gold heads)")
	cmd.Flag.StringVar(&policy, "policy", POLICY_STATIC, "Transition policy: static, dynamic or explore")
	cmd.Flag.Float64Var(&explore, "p", 0.1, "Probability of a random legal transition (explore policy)")
	cmd.Flag.Int64Var(&seed, "seed", 1, "Random seed (explore policy)")
	cmd.Flag.IntVar(&limit, "limit", 0, "Limit input set")
	cmd.Flag.IntVar(&Jobs, "jobs", 1, "Number of sentences parsed concurrently")
	cmd.Flag.IntVar(&maxSteps, "maxsteps", 0, "Max transitions per sentence; 0 = unbounded")
	cmd.Flag.BoolVar(&showOracle, "v", false, "Log every configuration")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML run configuration; flags given on the command line take precedence")
}

func OracleCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Oracle,
		UsageLine: "oracle <file options> [arguments]",
		Short:     "derive a corpus with an arc eager oracle and score the result",
		Long: `
derive a corpus with an arc eager oracle and score the result

	$ ./eagerparse oracle -f <conll> -out <conll> [-policy static|dynamic|explore] [options]

The static policy follows the canonical gold derivation, dynamic takes the
cheapest legal transition and explore takes a random legal transition with
probability -p before deferring to the dynamic oracle.

`,
		Flag: *flag.NewFlagSet("oracle", flag.ExitOnError),
	}
	addParseFlags(cmd)
	cmd.Flag.StringVar(&outConll, "out", "", "Output Conll File")
	return cmd
}
