package main

import (
	"os"

	"github.com/carson-networks/bank-client/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
