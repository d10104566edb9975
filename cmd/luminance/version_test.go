package main

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, err := runCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "Luminance 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestResolveBuildFallsBackToEmbeddedInfo(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want buildDetails
	}{
		{
			name: "no build info",
			want: buildDetails{Version: "dev", Commit: "none", Date: "unknown"},
		},
		{
			name: "module and vcs metadata",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Version: "v0.4.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0a1b2c3"},
					{Key: "vcs.time", Value: "2026-09-30T10:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: buildDetails{Version: "v0.4.0", Commit: "0a1b2c3", Date: "2026-09-30T10:00:00Z", GoVersion: "go1.25.1", Modified: true},
		},
		{
			name: "devel build keeps default version",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: buildDetails{Version: "dev", Commit: "none", Date: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, resolveBuild(tt.info))
		})
	}
}

func TestResolveBuildPrefersInjectedValues(t *testing.T) {
	originalVersion, originalCommit := version, commit
	t.Cleanup(func() { version, commit = originalVersion, originalCommit })
	version, commit = "1.0.0", "feedbee"

	b := resolveBuild(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.9.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0a1b2c3"}},
	})
	require.Equal(t, "1.0.0", b.Version)
	require.Equal(t, "feedbee", b.Commit)
}

func TestVersionShortFlag(t *testing.T) {
	originalVersion := version
	t.Cleanup(func() { version = originalVersion })
	version = "2.0.0"

	output, err := runCommand(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "2.0.0\n", output)
}
