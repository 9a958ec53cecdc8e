package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thenoetrevino/genovar/cmd"
	"github.com/thenoetrevino/genovar/internal/cli"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.ExitSuccess)
}
