// Package version exposes build and runtime information for pyloc binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

// BuildInfo contains all build and runtime information
type BuildInfo struct {
	// Version Information
	Version   string `json:"version"`
	SemVer    string `json:"semver"`
	BuildDate string `json:"build_date"`

	// Git Information
	GitCommit string `json:"git_commit"`
	GitBranch string `json:"git_branch"`

	// Go Build Information
	GoVersion string `json:"go_version"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`

	// Runtime Information
	NumCPU     int `json:"num_cpu"`
	GOMAXPROCS int `json:"gomaxprocs"`

	// Build Settings
	BuildDeps []Module `json:"build_deps"`
}

// Module represents a Go module dependency
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Sum     string `json:"sum"`
}

// GetBuildInfo returns comprehensive build information
func GetBuildInfo() BuildInfo {
	var buildDeps []Module
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range buildInfo.Deps {
			buildDeps = append(buildDeps, Module{
				Path:    dep.Path,
				Version: dep.Version,
				Sum:     dep.Sum,
			})
		}
	}

	return BuildInfo{
		Version:   Version,
		SemVer:    strings.Split(Version, "-")[0],
		BuildDate: BuildDate,

		GitCommit: GitCommit,
		GitBranch: GitBranch,

		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,

		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),

		BuildDeps: buildDeps,
	}
}

// FullVersion returns a formatted string with complete version information
func FullVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("pyloc %s\n", info.Version))
	b.WriteString("========================================\n\n")

	b.WriteString("Version Information:\n")
	b.WriteString(fmt.Sprintf("  Version:      %s\n", info.Version))
	b.WriteString(fmt.Sprintf("  Semantic Ver: %s\n", info.SemVer))
	b.WriteString(fmt.Sprintf("  Build Date:   %s\n", info.BuildDate))
	b.WriteString("\n")

	b.WriteString("Git Information:\n")
	b.WriteString(fmt.Sprintf("  Commit:       %s\n", info.GitCommit))
	b.WriteString(fmt.Sprintf("  Branch:       %s\n", info.GitBranch))
	b.WriteString("\n")

	b.WriteString("Go Build Information:\n")
	b.WriteString(fmt.Sprintf("  Go Version:   %s\n", info.GoVersion))
	b.WriteString(fmt.Sprintf("  Compiler:     %s\n", info.Compiler))
	b.WriteString(fmt.Sprintf("  Platform:     %s\n", info.Platform))
	b.WriteString("\n")

	b.WriteString("Runtime Information:\n")
	b.WriteString(fmt.Sprintf("  OS:           %s\n", info.OS))
	b.WriteString(fmt.Sprintf("  Architecture: %s\n", info.Arch))
	b.WriteString(fmt.Sprintf("  CPUs:         %d\n", info.NumCPU))
	b.WriteString(fmt.Sprintf("  GOMAXPROCS:   %d\n", info.GOMAXPROCS))
	b.WriteString("\n")

	if len(info.BuildDeps) > 0 {
		b.WriteString("Dependencies:\n")
		shown := len(info.BuildDeps)
		if shown > 5 {
			shown = 5
		}
		for _, dep := range info.BuildDeps[:shown] {
			b.WriteString(fmt.Sprintf("  - %s@%s\n", dep.Path, dep.Version))
		}
		if len(info.BuildDeps) > 5 {
			b.WriteString("  ... and more\n")
		}
	}

	return b.String()
}
