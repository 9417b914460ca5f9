// Package tags computes the deterministic, deduplicated set of
// version-control-derived tags for a container image. Resolution is a
// pure function of the execution context: re-invoking on an unchanged
// context yields byte-identical output, which is what makes downstream
// layer-cache reuse predictable.
package tags

import (
	"strings"

	"github.com/sofmeright/stagehand/src/cictx"
)

// TagSet is an ordered sequence of unique tag strings. The
// commit-derived tag is always present and always first.
type TagSet []string

// String renders the set as a single space-separated line, the wire
// format of the tags command.
func (ts TagSet) String() string {
	return strings.Join(ts, " ")
}

// Options adjust resolution. The zero value is the plain algorithm.
type Options struct {
	// Qualifier is an optional host/namespace prefix applied uniformly
	// to every tag as "{qualifier}:{tag}".
	Qualifier string

	// ReleaseChannels additionally emits major.minor and major channel
	// tags when the ref is a clean semver release tag.
	ReleaseChannels bool
}

// Resolve maps an execution context to its TagSet.
//
// The commit tag always leads. The ref tag and the "{ref}.{commit}"
// composite follow unless the ref is empty or a GitHub-style PR merge
// ref; Travis-style refs (including synthesized PR-{n}) are never
// suppressed. Duplicates are dropped preserving first occurrence.
func Resolve(ctx *cictx.Context, opts Options) TagSet {
	raw := []string{ctx.Commit}

	suppressed := ctx.Flavor == cictx.FlavorGitHubActions && ctx.IsMergeRef
	if ctx.Ref != "" && !suppressed {
		raw = append(raw, ctx.Ref, ctx.Ref+"."+ctx.Commit)
		if opts.ReleaseChannels {
			raw = append(raw, channelTags(ctx.Ref)...)
		}
	}

	out := make(TagSet, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		if opts.Qualifier != "" {
			t = opts.Qualifier + ":" + t
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
