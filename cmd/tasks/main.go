package main

import (
	"context"
	"fmt"
	"os"

	"task-tracker/internal/cli"
	"task-tracker/internal/config"
)

func main() {
	// Configuration and the store are resolved after flag parsing
	app := cli.NewApp(config.NewLoader())

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
