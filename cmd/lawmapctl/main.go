package main

import (
	"os"

	"lawmap/cmd/lawmapctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
