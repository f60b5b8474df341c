// Package config holds runtime configuration: defaults, CLI flag parsing,
// lineup files, and validation. Defaults match the player page layout
// (channels 2..57, videos under "video/", output "video_filenames.js").
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/backmassage/channelsurf/internal/lineup"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Display holds the logging and terminal settings shared by both commands.
type Display struct {
	ColorMode ColorMode // Default: "auto".
	Verbose   bool
	LogFile   string // Optional log file path (append mode).
}

// Config holds all channelsurf settings. It is populated by [DefaultConfig],
// optionally overlaid by a lineup file, and then by [ParseFlags].
type Config struct {
	// Source and destination.
	VideoDir   string // Positional arg. Default: "video".
	OutputPath string // Default: "video_filenames.js".
	PathPrefix string // Prefix written before each filename. Default: "video".
	Extensions []string

	// Channel layout. The special lists are raw comma-separated tokens;
	// range checks happen in the lineup package so rejects can be logged.
	MinChannel     int // Default: 2.
	MaxChannel     int // Default: 57.
	StaticChannels string
	CCDChannels    string

	// Behavior flags.
	SortFiles bool // Default: true. Cleared by --no-sort.
	DryRun    bool
	// LineupFile is an optional .hcl, .yaml or .toml file loaded before flags.
	LineupFile string

	Display Display
}

// DefaultConfig returns a Config matching the player page's fixed
// values. Used as the base before [ParseFlags] applies overrides.
func DefaultConfig() Config {
	return Config{
		VideoDir:   "video",
		OutputPath: "video_filenames.js",
		PathPrefix: "video",
		Extensions: []string{".mp4"},
		MinChannel: 2,
		MaxChannel: 57,
		SortFiles:  true,
		Display:    Display{ColorMode: ColorAuto},
	}
}

// Validate checks the channel range, extension list and required paths.
// Extensions are normalized to lowercase with a leading dot.
func (c *Config) Validate() error {
	if err := c.Display.validate(); err != nil {
		return err
	}
	if c.MinChannel < 0 {
		return fmt.Errorf("min channel must not be negative (got %d)", c.MinChannel)
	}
	if c.MaxChannel < c.MinChannel {
		return fmt.Errorf("max channel %d is below min channel %d", c.MaxChannel, c.MinChannel)
	}
	if span := (lineup.Range{Min: c.MinChannel, Max: c.MaxChannel}).Len(); span > lineup.MaxSpan {
		return fmt.Errorf("channel range %d-%d spans %d channels, limit is %d", c.MinChannel, c.MaxChannel, span, lineup.MaxSpan)
	}
	if strings.TrimSpace(c.VideoDir) == "" {
		return errors.New("video directory must not be empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" && !c.DryRun {
		return errors.New("output path must not be empty")
	}

	exts, err := normalizeExtensions(c.Extensions)
	if err != nil {
		return err
	}
	c.Extensions = exts
	c.PathPrefix = NormalizePrefix(c.PathPrefix)
	return nil
}

func (d *Display) validate() error {
	switch d.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", d.ColorMode)
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizePrefix converts the media path prefix to forward slashes and
// strips surrounding separators, so "video\\clips/" becomes "video/clips".
func NormalizePrefix(prefix string) string {
	p := strings.ReplaceAll(strings.TrimSpace(prefix), `\`, "/")
	return strings.Trim(p, "/")
}

// normalizeExtensions lowercases each extension and adds the leading dot.
// Accepted forms: "mp4", ".mp4", ".MP4".
func normalizeExtensions(raw []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, e := range raw {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e == "." || strings.ContainsAny(e, `/\`) {
			return nil, fmt.Errorf("invalid file extension %q", e)
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one file extension is required")
	}
	return out, nil
}

// StaticConfig holds all mkstatic settings.
type StaticConfig struct {
	WAVPath     string        // Default: "static.wav".
	MP3Path     string        // Default: "static.mp3". Cleared by --no-mp3.
	MP3Bitrate  string        // Default: "192k".
	SampleRate  int           // Default: 44100 Hz.
	Duration    time.Duration // Default: 1s.
	LowCut      float64       // Default: 30 Hz.
	HighCut     float64       // Default: 5000 Hz.
	Order       int           // Default: 4 (per edge of the band).
	Attenuation int           // Default: 8. PCM samples are divided by this.
	Seed        uint64        // 0 seeds from the clock.
	CheckOnly   bool          // Run --check diagnostics and exit.

	Display Display
}

// DefaultStaticConfig returns the parameters of the static.mp3 shipped with the player.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		WAVPath:     "static.wav",
		MP3Path:     "static.mp3",
		MP3Bitrate:  "192k",
		SampleRate:  44100,
		Duration:    time.Second,
		LowCut:      30,
		HighCut:     5000,
		Order:       4,
		Attenuation: 8,
		Display:     Display{ColorMode: ColorAuto},
	}
}

// Validate checks filter and sample parameters. The band edges must sit
// strictly inside (0, Nyquist).
func (c *StaticConfig) Validate() error {
	if err := c.Display.validate(); err != nil {
		return err
	}
	if c.CheckOnly {
		return nil
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive (got %d)", c.SampleRate)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive (got %s)", c.Duration)
	}
	nyquist := float64(c.SampleRate) / 2
	if c.LowCut <= 0 || c.HighCut <= c.LowCut || c.HighCut >= nyquist {
		return fmt.Errorf("band %.1f-%.1f Hz must satisfy 0 < low < high < %.1f", c.LowCut, c.HighCut, nyquist)
	}
	if c.Order < 2 || c.Order%2 != 0 {
		return fmt.Errorf("filter order must be an even number >= 2 (got %d)", c.Order)
	}
	if c.Attenuation < 1 {
		return fmt.Errorf("attenuation must be >= 1 (got %d)", c.Attenuation)
	}
	if strings.TrimSpace(c.WAVPath) == "" {
		return errors.New("WAV output path must not be empty")
	}
	if c.MP3Path != "" {
		br, err := normalizeBitrate(c.MP3Bitrate)
		if err != nil {
			return err
		}
		c.MP3Bitrate = br
	}
	return nil
}

// normalizeBitrate validates and canonicalizes user bitrate input.
// Accepted forms: "192", "192k", "192K", "192kbps". Output is "<n>k".
func normalizeBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.New("MP3 bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := parseInt(s, "MP3 bitrate")
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid MP3 bitrate %q (use positive Kbps value, e.g. 192k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}
