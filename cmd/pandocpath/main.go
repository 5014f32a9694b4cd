package main

import (
	"os"

	"github.com/arthur-debert/pandocpath/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
