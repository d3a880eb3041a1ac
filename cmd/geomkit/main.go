package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "geomkit",
		Usage: "Closest-point queries, wave generators and diagnostic charts",
		Commands: []*cli.Command{
			closestCommand(),
			projectCommand(),
			waveCommand(),
			polarCommand(),
			renderCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
