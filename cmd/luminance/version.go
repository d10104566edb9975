package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildDetails struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Modified  bool
}

// currentBuild prefers values injected through -ldflags and falls back to the
// module and VCS metadata the Go toolchain embeds.
func currentBuild() buildDetails {
	info, _ := debug.ReadBuildInfo()
	return resolveBuild(info)
}

func resolveBuild(info *debug.BuildInfo) buildDetails {
	b := buildDetails{Version: version, Commit: commit, Date: date}
	if info == nil {
		return b
	}

	b.GoVersion = info.GoVersion
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.Commit == "none" {
				b.Commit = setting.Value
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = setting.Value
			}
		case "vcs.modified":
			b.Modified = setting.Value == "true"
		}
	}
	return b
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := currentBuild()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, b.Version)
				return nil
			}

			rev := b.Commit
			if b.Modified {
				rev += " (modified)"
			}
			fmt.Fprintf(out, "Luminance %s\ncommit: %s\nbuilt: %s\n", b.Version, rev, b.Date)
			if b.GoVersion != "" {
				fmt.Fprintf(out, "go: %s\n", b.GoVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version")

	return cmd
}
