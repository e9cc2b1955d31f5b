package main

import (
	"fmt"
	"os"

	"github.com/ankan123basu/CPUXpert/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
