package main

import (
	"os"

	"github.com/reviewloop/gemini-pr-review/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
