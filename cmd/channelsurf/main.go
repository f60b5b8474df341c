// Command channelsurf generates the channel-lineup JavaScript file for the
// retro TV player: every channel in range gets a video, static, or the
// closed-circuit feed.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/channelsurf/internal/config"
	"github.com/backmassage/channelsurf/internal/display"
	"github.com/backmassage/channelsurf/internal/logging"
	"github.com/backmassage/channelsurf/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		if errors.Is(err, config.ErrExit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "channelsurf: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "channelsurf: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "channelsurf: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. A dry run keeps stdout for the declaration.
	if cfg.DryRun {
		log.SetOutput(os.Stderr)
	} else {
		display.PrintBanner(os.Stdout)
	}

	log.Info("=== channelsurf v%s (%s) ===", version, commit)
	log.Info("Videos:   %s", cfg.VideoDir)
	log.Info("Channels: %d-%d", cfg.MinChannel, cfg.MaxChannel)
	if cfg.DryRun {
		log.Warn("DRY RUN: declaration goes to stdout, %s is left untouched", cfg.OutputPath)
	} else {
		log.Info("Output:   %s", cfg.OutputPath)
	}

	// Phase 3: Discover, assign, serialize.
	if _, err := pipeline.Run(&cfg, log, os.Stdout); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
