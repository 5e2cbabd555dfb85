// Command lvlmat runs the interactive matrix calculator on stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlmat/calc"
)

func main() {
	s := calc.NewSession(os.Stdin, os.Stdout)
	if err := s.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlmat:", err)
		os.Exit(1)
	}
}
