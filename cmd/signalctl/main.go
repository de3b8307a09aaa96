package main

import (
	"os"

	"signalrest/cmd/signalctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
