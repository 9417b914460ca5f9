package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sofmeright/stagehand/src/cictx"
	"github.com/sofmeright/stagehand/src/tags"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [qualifier]",
	Short: "Resolve image tags for the current context",
	Long: `Resolve the deduplicated tag set for the current execution context
and print it as one space-separated line, commit tag first.

The optional positional argument is a registry qualifier (host/namespace)
prepended to every tag; without it the configured image repository applies,
or tags are emitted unqualified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	ctx, err := cictx.Detect(rootDir)
	if err != nil {
		return err
	}

	qualifier := cfg.Image.Repository
	if len(args) > 0 {
		qualifier = args[0]
	}

	ts := tags.Resolve(ctx, tags.Options{
		Qualifier:       qualifier,
		ReleaseChannels: cfg.Tags.ReleaseChannels,
	})
	fmt.Fprintln(cmd.OutOrStdout(), ts.String())
	return nil
}
