package main

import (
	"fmt"
	"os"

	"github.com/JOHN41-tech/assistant-L/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
