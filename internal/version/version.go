package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the lust CLI.
// These variables can be overridden at build time via -ldflags.

// Semver — версия тулчейна без раскраски; с ней сверяется поле `lust` в lust.toml.
const Semver = "0.1.0"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the human-facing version of the CLI.
	Version = colorize(Semver) + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// colorize раскрашивает major/minor/patch разными цветами.
func colorize(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
}
