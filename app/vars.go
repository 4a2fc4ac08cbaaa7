package app

import (
	"log"
	"os"

	"eagerparse/util/conf"

	"github.com/gonuts/commander"
)

var (
	allOut bool = true

	// processing options
	policy     string
	explore    float64
	seed       int64
	limit      int
	Jobs       int
	maxSteps   int
	showOracle bool
	confFile   string

	// file names
	input     string
	inputGold string
	outConll  string
	outCosts  string
)

const (
	POLICY_STATIC  = "static"
	POLICY_DYNAMIC = "dynamic"
	POLICY_EXPLORE = "explore"
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}

// LoadConf fills unset flags of cmd from the -conf run file, if given
func LoadConf(cmd *commander.Command) {
	if confFile == "" {
		return
	}
	if !VerifyExists(confFile) {
		os.Exit(1)
	}
	runConf, err := conf.ReadFile(confFile)
	if err != nil {
		log.Println("Failed reading run configuration file:", confFile)
		log.Fatalln(err)
	}
	applied, err := runConf.Override(&cmd.Flag)
	if err != nil {
		log.Fatalln(err)
	}
	if allOut && len(applied) > 0 {
		log.Println("Flags set from", confFile+":", applied)
	}
}

// RunConf collects the current flag values for validation
func RunConf() *conf.Conf {
	return &conf.Conf{
		Input:    input,
		Output:   outConll,
		Gold:     inputGold,
		Policy:   policy,
		Explore:  &explore,
		Seed:     &seed,
		Limit:    &limit,
		Jobs:     &Jobs,
		MaxSteps: &maxSteps,
		Verbose:  &showOracle,
	}
}
