package main

import (
	"os"

	"github.com/shadowzevax/Extensor-SRT/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
