package main

import (
	"os"

	"fdtree/internal/cmd"
)

func main() {
	if cmd.Execute() != nil {
		os.Exit(1)
	}
}
