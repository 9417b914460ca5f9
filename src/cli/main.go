package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/joho/godotenv"

	"github.com/sofmeright/stagehand/src/cli/cmd"
)

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load(".stagehand.env")

	if err := cmd.Execute(); err != nil {
		// A subprocess's non-zero exit propagates unmodified.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
