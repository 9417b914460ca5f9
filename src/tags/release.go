package tags

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// channelTags expands a clean semver release ref into its floating
// channel tags: "v1.2.3" → ["v1.2", "v1"]. Prerelease and build
// metadata disqualify the ref — an rc must never move a channel.
// Non-semver refs return nil.
func channelTags(ref string) []string {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(ref, "v"))
	if err != nil {
		return nil
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return nil
	}

	prefix := ""
	if strings.HasPrefix(ref, "v") {
		prefix = "v"
	}
	return []string{
		fmt.Sprintf("%s%d.%d", prefix, v.Major(), v.Minor()),
		fmt.Sprintf("%s%d", prefix, v.Major()),
	}
}
