package main

import (
	"fmt"
	"os"

	"github.com/gochart/exportgen/internal/pkg/cli"
	"github.com/gochart/exportgen/internal/pkg/env"
)

func main() {
	envs, err := env.FromOs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	// Run command
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, envs, cli.DefaultFsFactory)
	os.Exit(cmd.Execute())
}
