package ffmpeg

import (
	"strconv"

	"github.com/backmassage/channelsurf/internal/config"
)

// BuildTranscode constructs the ffmpeg argument slice that converts
// cfg.WAVPath to cfg.MP3Path with the given MP3 encoder.
func BuildTranscode(cfg *config.StaticConfig, encoder string) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	if cfg.Display.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input ---
	args = append(args, "-i", cfg.WAVPath)

	// --- Audio codec ---
	args = append(args,
		"-vn",
		"-map_metadata", "-1",
		"-c:a", encoder,
		"-b:a", cfg.MP3Bitrate,
		"-ar", strconv.Itoa(cfg.SampleRate),
		"-ac", "1",
	)

	// --- Output ---
	args = append(args, "-f", "mp3", cfg.MP3Path)
	return args
}
