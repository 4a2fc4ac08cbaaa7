package main

import (
	"fmt"
	"os"

	"eagerparse/app"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var cmd *commander.Command

func init() {
	cmd = &commander.Command{
		UsageLine:   os.Args[0],
		Short:       "arc eager dependency parsing oracles",
		Subcommands: app.AllCommands(),
		Flag:        *flag.NewFlagSet("eagerparse", flag.ExitOnError),
	}
}

func main() {
	err := cmd.Dispatch(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
