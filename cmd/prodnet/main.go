package main

import (
	"context"
	"os"

	"github.com/katalvlaran/prodnet/internal/commands"
	"github.com/katalvlaran/prodnet/internal/output"
)

func main() {
	if err := commands.Execute(context.Background(), os.Args[1:]); err != nil {
		output.Error(os.Stderr, err.Error())
		os.Exit(1)
	}
}
