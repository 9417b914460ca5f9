package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/sofmeright/stagehand/src/build"
	"github.com/sofmeright/stagehand/src/cictx"
	"github.com/sofmeright/stagehand/src/output"
	"github.com/sofmeright/stagehand/src/stage"
	"github.com/sofmeright/stagehand/src/tags"
)

var (
	bTarget  string
	bBaseTag string
	bProtoc  string
	bDryRun  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the container image",
	Long: `Render the declared stage pipeline to a Dockerfile and build the named
target stage with docker buildx, tagging with the resolved tag set.
Inline layer-cache hints are enabled on every build.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&bTarget, "target", "", "terminal stage to build (default: last stage)")
	buildCmd.Flags().StringVar(&bBaseTag, "base-image-tag", "", "override the runtime base image tag pin")
	buildCmd.Flags().StringVar(&bProtoc, "protoc-version", "", "override the protoc version pin")
	buildCmd.Flags().BoolVar(&bDryRun, "dry-run", false, "show the plan without executing")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	ctx := context.Background()
	color := output.UseColor()
	w := os.Stdout
	pipelineStart := time.Now()

	// Execution context first: everything downstream derives from it.
	ex, err := cictx.Detect(rootDir)
	if err != nil {
		return err
	}
	output.ContextBlock(w, contextKV(ex))

	// Apply CLI pin overrides, then re-validate: pins stay structured
	// values, never loose text.
	if bBaseTag != "" {
		cfg.Build.BaseImageTag = bBaseTag
	}
	if bProtoc != "" {
		cfg.Build.ProtocVersion = bProtoc
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// --- Plan ---
	planStart := time.Now()

	manifest, err := stage.ReadManifest(filepath.Join(cfg.Build.Context, cfg.Build.Manifest))
	if err != nil {
		return err
	}

	arch, err := stage.HostArch()
	if err != nil {
		return err
	}

	pipe, err := stage.New(cfg.Build, manifest.BinaryName(), arch)
	if err != nil {
		return err
	}

	target := bTarget
	if target == "" {
		target = cfg.Build.Target
	}
	if target == "" {
		target = pipe.Terminal()
	}
	if !pipe.HasTarget(target) {
		return fmt.Errorf("unknown build target %q (available: %v)", target, pipe.Targets())
	}

	ts := tags.Resolve(ex, tags.Options{
		Qualifier:       cfg.Image.Repository,
		ReleaseChannels: cfg.Tags.ReleaseChannels,
	})
	refs := imageRefs(ts, manifest.BinaryName())

	dockerfile := filepath.Join(".stagehand", "Dockerfile")
	step := build.Step{
		Name:       target,
		Dockerfile: dockerfile,
		Context:    cfg.Build.Context,
		Target:     target,
		Tags:       refs,
	}
	planElapsed := time.Since(planStart)

	planSec := output.NewSection(w, "Plan", planElapsed, color)
	planSec.Row("%-16s%s (%s)", "binary", manifest.BinaryName(), arch)
	planSec.Row("%-16s%v", "stages", pipe.Targets())
	planSec.Row("%-16s%s", "target", target)
	for _, r := range refs {
		planSec.Row("%-16s%s", "tag", r)
	}
	planSec.Close()

	// --- Dry run ---
	if bDryRun {
		fmt.Fprintf(w, "step: %s\n", step.Name)
		fmt.Fprintf(w, "  dockerfile: %s\n", step.Dockerfile)
		fmt.Fprintf(w, "  context:    %s\n", step.Context)
		fmt.Fprintf(w, "  target:     %s\n", step.Target)
		fmt.Fprintf(w, "  tags:       %v\n", step.Tags)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dockerfile), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dockerfile), err)
	}
	if err := os.WriteFile(dockerfile, []byte(pipe.Render()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dockerfile, err)
	}

	// --- Build ---
	buildStart := time.Now()

	bx := build.NewBuildx(verbose)
	if err := bx.EnsureBuilder(ctx); err != nil {
		return err
	}

	result, err := bx.Build(ctx, step)
	buildElapsed := time.Since(buildStart)
	if err != nil {
		failSec := output.NewSection(w, "Build", buildElapsed, color)
		failSec.Row("%-16s%s", "status", output.StatusIcon("failed", color))
		failSec.Close()
		return err
	}

	buildSec := output.NewSection(w, "Build", buildElapsed, color)
	for _, img := range result.Images {
		buildSec.Row("result  %-40s", img)
	}
	buildSec.Close()

	fmt.Fprintln(w)
	output.SummaryRow(w, "build", "success", fmt.Sprintf("%d tag(s)", len(refs)), color)
	output.SummaryTotal(w, time.Since(pipelineStart), "success", color)

	return nil
}

// imageRefs turns the resolved tag set into buildable image refs. A
// qualifier makes the tags fully qualified already; without one, the
// binary name becomes the local repository.
func imageRefs(ts tags.TagSet, binary string) []string {
	refs := make([]string, 0, len(ts))
	for _, t := range ts {
		if cfg.Image.Repository != "" {
			refs = append(refs, t)
		} else {
			refs = append(refs, binary+":"+t)
		}
	}
	return refs
}

// contextKV returns key-value pairs for the pipeline context block.
func contextKV(ex *cictx.Context) []output.KV {
	kv := []output.KV{
		{Key: "Context", Value: ex.Describe()},
		{Key: "Commit", Value: ex.Commit},
	}
	if ex.Ref != "" {
		kv = append(kv, output.KV{Key: "Ref", Value: ex.Ref})
	}
	if ex.Mode == cictx.ModeCI {
		kv = append(kv, output.KV{Key: "CI", Value: string(ex.Flavor)})
	}
	return kv
}
