package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sofmeright/stagehand/src/output"
	"github.com/sofmeright/stagehand/src/stage"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List available build targets",
	RunE:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	// Enumeration only needs stage names, not a buildable host: fall
	// back to a mapped architecture and a placeholder binary when the
	// local checkout can't supply them.
	binary := "app"
	if m, err := stage.ReadManifest(filepath.Join(cfg.Build.Context, cfg.Build.Manifest)); err == nil {
		binary = m.BinaryName()
	}
	arch, err := stage.HostArch()
	if err != nil {
		arch = "x86_64"
	}

	pipe, err := stage.New(cfg.Build, binary, arch)
	if err != nil {
		return err
	}

	color := output.UseColor()
	w := os.Stdout

	if color {
		sec := output.NewSection(w, "Targets", 0, color)
		for _, s := range pipe.Stages {
			sec.Row("%-12s%s", s.Name, s.Doc)
		}
		sec.Close()
		return nil
	}

	// Plain fallback when fancy formatting isn't available.
	for _, s := range pipe.Stages {
		fmt.Fprintf(w, "%-12s%s\n", s.Name, s.Doc)
	}
	return nil
}
