package main

import (
	"context"
	"os"

	"github.com/NSteinhoff/meal-planner/pkg/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:]))
}
