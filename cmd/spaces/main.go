package main

import (
	"os"

	"github.com/hupe1980/spaces/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
