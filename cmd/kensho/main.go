package main

import (
	"os"

	"github.com/kensho-project/kensho/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
