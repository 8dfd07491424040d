// Command loan-tranche splits a loan between two rate offers so that the
// blended monthly payment is as low as possible.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"loan-tranche/cmd"
	"loan-tranche/config"
	"loan-tranche/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.DevMode})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander, cfg, log)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
