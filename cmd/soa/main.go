package main

import (
	"fmt"
	"os"

	"soa/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "soa:", err)
		os.Exit(1)
	}
}
