package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sofmeright/stagehand/src/build"
	"github.com/sofmeright/stagehand/src/cictx"
	"github.com/sofmeright/stagehand/src/output"
	"github.com/sofmeright/stagehand/src/tags"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push resolved tags to the registry",
	Long: `Push every resolved tag, gated on the execution context: only a direct
push to the primary branch publishes. Pull request and other-branch
builds skip cleanly with exit 0.`,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	ctx := context.Background()
	color := output.UseColor()
	w := os.Stdout

	ex, err := cictx.Detect(rootDir)
	if err != nil {
		return err
	}
	output.ContextBlock(w, contextKV(ex))

	if !build.ShouldPush(ex, cfg.Image.PrimaryBranch) {
		sec := output.NewSection(w, "Push", 0, color)
		sec.Row("%-16s%s  %s", "status", output.StatusIcon("skipped", color), build.ErrPushSkipped)
		sec.Close()
		return nil
	}

	if cfg.Image.Repository == "" {
		return fmt.Errorf("image.repository must be configured to push")
	}

	ts := tags.Resolve(ex, tags.Options{
		Qualifier:       cfg.Image.Repository,
		ReleaseChannels: cfg.Tags.ReleaseChannels,
	})

	pushStart := time.Now()
	bx := build.NewBuildx(verbose)

	if err := bx.Login(ctx, cfg.Image.Repository, cfg.Image.Credentials); err != nil {
		return err
	}
	if err := bx.PushTags(ctx, ts); err != nil {
		return err
	}

	sec := output.NewSection(w, "Push", time.Since(pushStart), color)
	for _, ref := range ts {
		sec.Row("%-50s %s", ref, output.StatusIcon("success", color))
	}
	sec.Close()

	return nil
}
