// Command mkstatic renders the band-limited TV static played on static
// channels, as a WAV file and optionally an MP3 via ffmpeg.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backmassage/channelsurf/internal/check"
	"github.com/backmassage/channelsurf/internal/config"
	"github.com/backmassage/channelsurf/internal/display"
	"github.com/backmassage/channelsurf/internal/ffmpeg"
	"github.com/backmassage/channelsurf/internal/logging"
	"github.com/backmassage/channelsurf/internal/noise"
	"github.com/backmassage/channelsurf/internal/render"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultStaticConfig()
	if err := config.ParseStaticFlags(&cfg, os.Args[1:], version); err != nil {
		if errors.Is(err, config.ErrExit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "mkstatic: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mkstatic: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkstatic: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(log)
		return 0
	}

	// Fail before synthesizing if the MP3 export cannot happen.
	if cfg.MP3Path != "" {
		if err := check.CheckDeps(); err != nil {
			log.Error("%v (use --no-mp3 to write the WAV only)", err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug(cfg.Display.Verbose, "Seed %d", seed)

	p := noise.ParamsFrom(&cfg)
	pcm, err := noise.Synthesize(p, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Info("Synthesized %d samples at %d Hz, band %.0f-%.0f Hz", len(pcm), p.SampleRate, p.LowCut, p.HighCut)

	var wav bytes.Buffer
	if err := noise.EncodeWAV(&wav, pcm, p.SampleRate); err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := render.WriteFile(cfg.WAVPath, wav.Bytes()); err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Success("Wrote %s (%s)", cfg.WAVPath, display.FormatBytes(int64(wav.Len())))

	if cfg.MP3Path == "" {
		return 0
	}
	if err := ffmpeg.Transcode(ctx, &cfg, log); err != nil {
		log.Error("MP3 export failed: %v", err)
		return 1
	}
	if fi, err := os.Stat(cfg.MP3Path); err == nil {
		log.Success("Wrote %s (%s)", cfg.MP3Path, display.FormatBytes(fi.Size()))
	}
	return 0
}
