// Package version identifies the running build. The commit hash comes from
// an -ldflags override when set, otherwise from debug.BuildInfo VCS data,
// otherwise it falls back to "dev". Full() renders the combined string,
// e.g. "qawave/a3f8c2d1".
package version

import "runtime/debug"

// AppName is the application name used in version strings and user agents.
const AppName = "qawave"

// gitCommitOverride takes the -ldflags value for container builds, where
// the .git directory never reaches the build stage.
var gitCommitOverride string

// GitCommit is the running build's commit hash, shortened to 8 characters.
// Builds without VCS stamping, such as go test binaries, report "dev".
var GitCommit = initGitCommit()

func initGitCommit() string {
	if gitCommitOverride != "" {
		if len(gitCommitOverride) > 8 {
			return gitCommitOverride[:8]
		}
		return gitCommitOverride
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 8 {
				return s.Value[:8]
			}
			return s.Value
		}
	}
	return "dev"
}

// Full returns "qawave/<commit>" for use in user-agent strings, logging, etc.
func Full() string {
	return AppName + "/" + GitCommit
}
