package config

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/video", "/media/video"},
		{"single trailing slash", "/media/video/", "/media/video"},
		{"multiple trailing slashes", "/media/video///", "/media/video"},
		{"root path", "/", "/"},
		{"relative path", "video", "video"},
		{"relative with slash", "video/", "video"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"video", "video"},
		{"video/", "video"},
		{"/video/clips/", "video/clips"},
		{`video\clips`, "video/clips"},
		{"  video ", "video"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePrefix(tt.in); got != tt.want {
			t.Errorf("NormalizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MinChannel != 2 || cfg.MaxChannel != 57 {
		t.Errorf("default range = %d..%d, want 2..57", cfg.MinChannel, cfg.MaxChannel)
	}
	if cfg.OutputPath != "video_filenames.js" {
		t.Errorf("default OutputPath = %q", cfg.OutputPath)
	}
	if cfg.PathPrefix != "video" {
		t.Errorf("default PathPrefix = %q", cfg.PathPrefix)
	}
	if diff := cmp.Diff([]string{".mp4"}, cfg.Extensions); diff != "" {
		t.Errorf("default Extensions (-want +got):\n%s", diff)
	}
	if !cfg.SortFiles {
		t.Error("default SortFiles should be true")
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.Display.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.Display.ColorMode, ColorAuto)
	}
}

func TestValidate_ChannelRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"default range", 2, 57, false},
		{"single channel", 7, 7, false},
		{"zero based", 0, 10, false},
		{"inverted", 10, 2, true},
		{"negative min", -1, 10, true},
		{"widest allowed span", 0, 9999, false},
		{"span over limit", 0, 10000, true},
		{"max int", 2, math.MaxInt, true},
		{"zero to max int", 0, math.MaxInt, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MinChannel, cfg.MaxChannel = tt.min, tt.max
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Extensions(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{"default", []string{".mp4"}, []string{".mp4"}, false},
		{"adds dot and lowercases", []string{"MP4", "webm"}, []string{".mp4", ".webm"}, false},
		{"dedupes", []string{".mp4", "mp4", ".MP4"}, []string{".mp4"}, false},
		{"empty list", nil, nil, true},
		{"only blanks", []string{" ", ""}, nil, true},
		{"bare dot", []string{"."}, nil, true},
		{"path separator", []string{"a/b"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Extensions = tt.in
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, cfg.Extensions); diff != "" {
				t.Errorf("Extensions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VideoDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with an empty video dir")
	}

	cfg = DefaultConfig()
	cfg.OutputPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with an empty output path")
	}

	cfg.DryRun = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with dry run should not need an output path, got: %v", err)
	}
}

func TestValidate_ColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an unknown color mode")
	}
}

func TestValidate_NormalizesPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PathPrefix = "/media/video/"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.PathPrefix != "media/video" {
		t.Errorf("PathPrefix = %q, want %q", cfg.PathPrefix, "media/video")
	}
}

func TestStaticValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StaticConfig)
		wantErr bool
	}{
		{"defaults", func(*StaticConfig) {}, false},
		{"zero sample rate", func(c *StaticConfig) { c.SampleRate = 0 }, true},
		{"zero duration", func(c *StaticConfig) { c.Duration = 0 }, true},
		{"low above high", func(c *StaticConfig) { c.LowCut, c.HighCut = 6000, 5000 }, true},
		{"high at nyquist", func(c *StaticConfig) { c.HighCut = 22050 }, true},
		{"zero low", func(c *StaticConfig) { c.LowCut = 0 }, true},
		{"odd order", func(c *StaticConfig) { c.Order = 3 }, true},
		{"order six", func(c *StaticConfig) { c.Order = 6 }, false},
		{"zero attenuation", func(c *StaticConfig) { c.Attenuation = 0 }, true},
		{"empty wav path", func(c *StaticConfig) { c.WAVPath = "" }, true},
		{"bad bitrate", func(c *StaticConfig) { c.MP3Bitrate = "fast" }, true},
		{"bad bitrate ignored without mp3", func(c *StaticConfig) { c.MP3Bitrate = "fast"; c.MP3Path = "" }, false},
		{"check only skips signal checks", func(c *StaticConfig) { c.CheckOnly = true; c.SampleRate = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStaticConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeBitrate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"192", "192k", false},
		{"192k", "192k", false},
		{"192K", "192k", false},
		{"320kbps", "320k", false},
		{" 128 k ", "128k", false},
		{"", "", true},
		{"0", "", true},
		{"-64k", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		got, err := normalizeBitrate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalizeBitrate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeBitrate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultStaticConfig_PlayerStaticSound(t *testing.T) {
	cfg := DefaultStaticConfig()
	if cfg.SampleRate != 44100 || cfg.Duration != time.Second {
		t.Errorf("signal = %d Hz for %s, want 44100 Hz for 1s", cfg.SampleRate, cfg.Duration)
	}
	if cfg.LowCut != 30 || cfg.HighCut != 5000 || cfg.Order != 4 {
		t.Errorf("filter = %.0f-%.0f Hz order %d, want 30-5000 Hz order 4", cfg.LowCut, cfg.HighCut, cfg.Order)
	}
	if cfg.Attenuation != 8 {
		t.Errorf("Attenuation = %d, want 8", cfg.Attenuation)
	}
}
