package main

import (
	"os"

	"github.com/opencode-ai/promptlib/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
