package output

import "os"

// CI environment detection. Flavor-level detection (which variable
// convention is in effect) lives in the cictx package; these helpers
// only answer "are we in a CI runner at all", which drives output
// formatting decisions.

func IsCI() bool {
	return os.Getenv("CI") == "true" ||
		os.Getenv("GITHUB_ACTIONS") == "true" ||
		os.Getenv("TRAVIS") == "true"
}

func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}
