package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/channelsurf/internal/config"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs args (args[0] is the binary). When verbose, stderr is tee'd
// to os.Stderr in real time; otherwise it is captured silently for
// classification.
func Execute(ctx context.Context, args []string, verbose bool) ExecResult {
	if len(args) == 0 {
		return ExecResult{Err: errors.New("empty command")}
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

// Logger is the subset of the operator log Transcode reports through.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Transcode exports cfg.WAVPath to cfg.MP3Path. A missing encoder moves on
// to the next candidate; any other failure stops immediately.
func Transcode(ctx context.Context, cfg *config.StaticConfig, log Logger) error {
	rs := NewRetryState()
	for {
		args := BuildTranscode(cfg, rs.Encoder())
		log.Debug(cfg.Display.Verbose, "Running: %s", strings.Join(args, " "))

		res := Execute(ctx, args, cfg.Display.Verbose)
		if res.Err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		cause := Classify(res.Stderr)
		if cause == nil {
			return fmt.Errorf("ffmpeg failed: %w: %s", res.Err, lastLine(res.Stderr))
		}
		prev := rs.Encoder()
		if rs.Advance(res.Stderr) {
			log.Warn("Encoder %s unavailable, retrying with %s", prev, rs.Encoder())
			continue
		}
		return fmt.Errorf("%w (%s): %s", cause, prev, lastLine(res.Stderr))
	}
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
