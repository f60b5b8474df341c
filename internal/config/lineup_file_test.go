package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadLineupFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"hcl", "lineup.hcl", `
video_dir  = "tapes"
output     = "out.js"
prefix     = "clips"
extensions = [".mp4", ".webm"]
sort       = false
static     = [5, 10]
ccd        = [6, 11]

channels {
  min = 3
  max = 40
}
`},
		{"yaml", "lineup.yaml", `
video_dir: tapes
output: out.js
prefix: clips
extensions: [.mp4, .webm]
sort: false
static: [5, 10]
ccd: [6, 11]
channels:
  min: 3
  max: 40
`},
		{"toml", "lineup.toml", `
video_dir  = "tapes"
output     = "out.js"
prefix     = "clips"
extensions = [".mp4", ".webm"]
sort       = false
static     = [5, 10]
ccd        = [6, 11]

[channels]
min = 3
max = 40
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			cfg := DefaultConfig()
			require.NoError(t, LoadLineupFile(path, &cfg))

			require.Equal(t, filepath.Join(dir, "tapes"), cfg.VideoDir)
			require.Equal(t, filepath.Join(dir, "out.js"), cfg.OutputPath)
			require.Equal(t, "clips", cfg.PathPrefix)
			require.Equal(t, []string{".mp4", ".webm"}, cfg.Extensions)
			require.False(t, cfg.SortFiles)
			require.Equal(t, "5,10", cfg.StaticChannels)
			require.Equal(t, "6,11", cfg.CCDChannels)
			require.Equal(t, 3, cfg.MinChannel)
			require.Equal(t, 40, cfg.MaxChannel)
		})
	}
}

func TestLoadLineupFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineup.hcl")
	writeFile(t, path, `static = [9]`)

	cfg := DefaultConfig()
	require.NoError(t, LoadLineupFile(path, &cfg))

	want := DefaultConfig()
	want.StaticChannels = "9"
	require.Equal(t, want, cfg)
}

func TestLoadLineupFile_HCLFunctions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineup.hcl")
	writeFile(t, path, `
static = range(20, 24)
ccd    = distinct(concat([6, 6], [40]))
`)

	cfg := DefaultConfig()
	require.NoError(t, LoadLineupFile(path, &cfg))
	require.Equal(t, "20,21,22,23", cfg.StaticChannels)
	require.Equal(t, "6,40", cfg.CCDChannels)
}

func TestLoadLineupFile_AbsolutePathsKept(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere")
	path := filepath.Join(dir, "lineup.toml")
	writeFile(t, path, `video_dir = "`+filepath.ToSlash(abs)+`"`)

	cfg := DefaultConfig()
	require.NoError(t, LoadLineupFile(path, &cfg))
	require.Equal(t, filepath.ToSlash(abs), filepath.ToSlash(cfg.VideoDir))
}

func TestLoadLineupFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"hcl syntax", "bad.hcl", `static = [5,`},
		{"hcl unknown attribute", "bad.hcl", `channel_count = 3`},
		{"hcl wrong type", "bad.hcl", `static = "five"`},
		{"yaml unknown key", "bad.yaml", "statik: [5]\n"},
		{"yaml wrong type", "bad.yml", "static: five\n"},
		{"toml unknown key", "bad.toml", "statik = [5]\n"},
		{"toml syntax", "bad.toml", "static = [5\n"},
		{"unsupported extension", "lineup.json", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)
			cfg := DefaultConfig()
			if err := LoadLineupFile(path, &cfg); err == nil {
				t.Errorf("LoadLineupFile(%s) should fail", tt.file)
			}
		})
	}
}

func TestLoadLineupFile_HugeRangeFailsValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineup.yaml")
	writeFile(t, path, "channels:\n  min: 2\n  max: 9223372036854775807\n")

	cfg := DefaultConfig()
	require.NoError(t, LoadLineupFile(path, &cfg))
	require.ErrorContains(t, cfg.Validate(), "limit is 10000")
}

func TestLoadLineupFile_EmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	writeFile(t, path, "")
	cfg := DefaultConfig()
	require.NoError(t, LoadLineupFile(path, &cfg))
	require.Equal(t, DefaultConfig(), cfg)
}
