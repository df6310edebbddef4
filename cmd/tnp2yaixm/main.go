package main

import (
	"os"

	"github.com/npillmayer/yaixm/cmd/tnp2yaixm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
