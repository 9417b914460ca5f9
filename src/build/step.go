// Package build executes the declared pipeline through docker buildx
// and publishes the result. The pipeline here is a synchronous, linear
// sequence of subprocess invocations: failure anywhere aborts the rest,
// with no retries and no partial rollback. Any parallelism between
// independent layers belongs to the external builder.
package build

import "time"

// Step is a single builder invocation: one rendered Dockerfile, one
// target stage, the resolved tag set.
type Step struct {
	Name       string
	Dockerfile string
	Context    string
	Target     string
	BuildArgs  map[string]string
	Tags       []string
}

// StepResult captures the outcome of a single build step.
type StepResult struct {
	Name     string
	Status   string // "success", "failed"
	Images   []string
	Duration time.Duration
	Error    error
}
