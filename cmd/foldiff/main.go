package main

import (
	"os"

	"github.com/foldiff/foldiff/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
