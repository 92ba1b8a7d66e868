package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"soc-api/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
