// Package check provides system diagnostics (mkstatic --check) and the
// pre-export dependency validation (CheckDeps) for ffmpeg and its MP3
// encoders.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound = errors.New("ffmpeg not found on PATH")
	ErrNoMP3Encoder   = errors.New("ffmpeg has neither libmp3lame nor libshine")
)

// mp3Encoders are the ffmpeg encoders mkstatic can export with.
var mp3Encoders = []string{"libmp3lame", "libshine"}

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck prints availability of ffmpeg, its MP3 encoders, and the result
// of a short test encode. Informational only; it does not stop on failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")

	if !checkFfmpeg(log) {
		return
	}
	checkMP3Encoders(log)
	checkTestEncode(log)
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) bool {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return false
	}
	out, err := exec.Command("ffmpeg", "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return true
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
	return true
}

// checkMP3Encoders lists the MP3 encoders compiled into ffmpeg.
func checkMP3Encoders(log Logger) {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	found := availableEncoders(string(out))
	for _, enc := range mp3Encoders {
		if found[enc] {
			log.Success("MP3 encoder %s available", enc)
		} else {
			log.Warn("MP3 encoder %s missing", enc)
		}
	}
}

// checkTestEncode runs a minimal MP3 encode with the first usable encoder.
func checkTestEncode(log Logger) {
	for _, enc := range mp3Encoders {
		log.Info("Testing %s encode...", enc)
		if runSilent("ffmpeg", testEncodeArgs(enc)...) {
			log.Success("%s encode works", enc)
			return
		}
		log.Warn("%s test encode failed", enc)
	}
	log.Error("No MP3 encoder could encode a test tone; use --no-mp3")
}

// CheckDeps is the pre-export validation: ffmpeg must be on PATH and list
// at least one MP3 encoder. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		return ErrNoMP3Encoder
	}
	found := availableEncoders(string(out))
	for _, enc := range mp3Encoders {
		if found[enc] {
			return nil
		}
	}
	return ErrNoMP3Encoder
}

// --- internal helpers ---

// availableEncoders picks the known MP3 encoders out of `ffmpeg -encoders`
// output, whose rows look like " A....D libmp3lame  libmp3lame MP3 ...".
func availableEncoders(listing string) map[string]bool {
	found := make(map[string]bool)
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.HasPrefix(fields[0], "A") {
			continue
		}
		for _, enc := range mp3Encoders {
			if fields[1] == enc {
				found[enc] = true
			}
		}
	}
	return found
}

// testEncodeArgs returns the ffmpeg arguments for a short sine-to-MP3 encode.
func testEncodeArgs(encoder string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", encoder, "-f", "null", "-",
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
