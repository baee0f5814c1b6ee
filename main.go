package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/idelchi/devkit/internal/cli"
)

var version = "dev"

func main() {
	// Optional .env with DEVKIT_* overrides.
	_ = godotenv.Load()

	if err := cli.New(version).Execute(); err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			fmt.Fprintln(os.Stderr, "error:", msg)
		}

		os.Exit(cli.ExitCode(err))
	}
}
