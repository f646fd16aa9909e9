package main

import (
	"os"

	"github.com/mmynk/settleup/cmd/settle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
