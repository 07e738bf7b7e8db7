// Command qlp prepares dominating-set QUBOs, runs them through an embedded
// sampler with anneal offsets and records the results.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is normal
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qlp:", err)
		os.Exit(1)
	}
}
