package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{
		"-s", "5,10",
		"--ccd", "6,11",
		"--min-channel", "1",
		"--max-channel", "99",
		"-o", "out/lineup.js",
		"--prefix", "clips",
		"--ext", "mp4,webm",
		"--no-sort",
		"--no-color",
		"-v",
		"library/",
	}, "test")
	require.NoError(t, err)

	want := DefaultConfig()
	want.StaticChannels = "5,10"
	want.CCDChannels = "6,11"
	want.MinChannel = 1
	want.MaxChannel = 99
	want.OutputPath = "out/lineup.js"
	want.PathPrefix = "clips"
	want.Extensions = []string{"mp4", "webm"}
	want.SortFiles = false
	want.VideoDir = "library"
	want.Display.ColorMode = ColorNever
	want.Display.Verbose = true

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags_DefaultsWithoutArgs(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, nil, "test"))
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config changed without flags (-want +got):\n%s", diff)
	}
}

func TestParseFlags_ColorPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--color"}, "test"))
	if cfg.Display.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want %q", cfg.Display.ColorMode, ColorAlways)
	}

	cfg = DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--color", "--no-color"}, "test"))
	if cfg.Display.ColorMode != ColorNever {
		t.Errorf("--no-color should win, got %q", cfg.Display.ColorMode)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"two positional args", []string{"a", "b"}},
		{"non-numeric channel bound", []string{"--max-channel", "lots"}},
		{"empty extension list", []string{"--ext", ","}},
		{"missing lineup file", []string{"-L", "does-not-exist.hcl"}},
		{"unsupported lineup format", []string{"-L", "lineup.ini"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, tt.args, "test"); err == nil {
				t.Errorf("ParseFlags(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseFlags_VersionAndHelpExit(t *testing.T) {
	for _, arg := range []string{"--version", "-V", "--help", "-h"} {
		cfg := DefaultConfig()
		err := ParseFlags(&cfg, []string{arg}, "test")
		if !errors.Is(err, ErrExit) {
			t.Errorf("ParseFlags(%s) = %v, want ErrExit", arg, err)
		}
	}
}

func TestParseFlags_FlagsWinOverLineupFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineup.hcl")
	writeFile(t, path, `
video_dir = "tapes"
static    = [5, 10]
ccd       = [6]
`)

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"-L", path, "--ccd", "7,8"}, "test"))

	if cfg.StaticChannels != "5,10" {
		t.Errorf("StaticChannels = %q, want file value 5,10", cfg.StaticChannels)
	}
	if cfg.CCDChannels != "7,8" {
		t.Errorf("CCDChannels = %q, want flag value 7,8", cfg.CCDChannels)
	}
	if cfg.VideoDir != filepath.Join(dir, "tapes") {
		t.Errorf("VideoDir = %q, want %q", cfg.VideoDir, filepath.Join(dir, "tapes"))
	}

	cfg = DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"-L", path, "elsewhere"}, "test"))
	if cfg.VideoDir != "elsewhere" {
		t.Errorf("positional video_dir should win, got %q", cfg.VideoDir)
	}
}

func TestParseStaticFlags(t *testing.T) {
	cfg := DefaultStaticConfig()
	err := ParseStaticFlags(&cfg, []string{
		"-o", "hiss.wav",
		"--no-mp3",
		"--duration", "250ms",
		"--low", "100",
		"--high", "4000",
		"--order", "6",
		"--seed", "42",
		"--sample-rate", "48000",
	}, "test")
	require.NoError(t, err)

	want := DefaultStaticConfig()
	want.WAVPath = "hiss.wav"
	want.MP3Path = ""
	want.Duration = 250 * time.Millisecond
	want.LowCut = 100
	want.HighCut = 4000
	want.Order = 6
	want.Seed = 42
	want.SampleRate = 48000
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStaticFlags_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"--duration", "forever"},
		{"stray"},
		{"--order", "x"},
	} {
		cfg := DefaultStaticConfig()
		if err := ParseStaticFlags(&cfg, args, "test"); err == nil {
			t.Errorf("ParseStaticFlags(%v) should fail", args)
		}
	}

	cfg := DefaultStaticConfig()
	if err := ParseStaticFlags(&cfg, []string{"-V"}, "test"); !errors.Is(err, ErrExit) {
		t.Errorf("ParseStaticFlags(-V) = %v, want ErrExit", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
