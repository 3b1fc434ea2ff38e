package main

import (
	"fmt"
	"os"

	"basket/internal/cli"
	"basket/internal/ui"
)

func main() {
	opts := cli.Options{
		Open:  cli.OpenDefault,
		RunUI: ui.Run,
	}
	if err := cli.Run(opts, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
