package pipeline

import (
	"fmt"
	"io"

	"github.com/backmassage/channelsurf/internal/config"
	"github.com/backmassage/channelsurf/internal/display"
	"github.com/backmassage/channelsurf/internal/lineup"
	"github.com/backmassage/channelsurf/internal/logging"
	"github.com/backmassage/channelsurf/internal/render"
)

// Run executes one generator pass. Every fatal condition is detected
// before the output is touched; on error nothing is written. In dry-run
// mode the declaration goes to stdout instead of cfg.OutputPath.
func Run(cfg *config.Config, log *logging.Logger, stdout io.Writer) (RunStats, error) {
	var stats RunStats
	rng := lineup.Range{Min: cfg.MinChannel, Max: cfg.MaxChannel}
	stats.Channels = rng.Len()

	// --- Discover ---
	files, err := Discover(cfg.VideoDir, cfg.Extensions, cfg.SortFiles)
	if err != nil {
		return stats, err
	}
	stats.Files = len(files)
	if len(files) == 0 {
		return stats, fmt.Errorf("%w in %s (extensions: %v)", lineup.ErrNoMediaFiles, cfg.VideoDir, cfg.Extensions)
	}
	log.Info("Found %d media file(s) in %s", len(files), cfg.VideoDir)
	for i, f := range files {
		log.Debug(cfg.Display.Verbose, "  [%d] %s", i, f)
	}

	// --- Parse special channels (out-of-range tokens are warnings) ---
	static, rejStatic := lineup.ParseChannels(cfg.StaticChannels, lineup.RoleStatic, rng)
	ccd, rejCCD := lineup.ParseChannels(cfg.CCDChannels, lineup.RoleCCD, rng)
	stats.Rejected = append(rejStatic, rejCCD...)
	for _, r := range stats.Rejected {
		log.Warn("%s", r)
	}

	// --- Assign ---
	l, err := lineup.Assign(rng, files, lineup.Specials{Static: static, CCD: ccd})
	if err != nil {
		return stats, err
	}
	stats.MediaChannels, stats.StaticCount, stats.CCDCount = l.Counts()
	logAssignments(cfg, log, l)

	// --- Serialize ---
	data := render.Declaration(l, cfg.PathPrefix)
	if cfg.DryRun {
		if _, err := stdout.Write(data); err != nil {
			return stats, fmt.Errorf("%w: stdout: %w", lineup.ErrOutputWrite, err)
		}
	} else if err := render.WriteFile(cfg.OutputPath, data); err != nil {
		return stats, err
	}
	stats.BytesWritten = int64(len(data))

	logSummary(cfg, log, &stats)
	return stats, nil
}

// logAssignments prints the per-channel mapping in verbose mode.
func logAssignments(cfg *config.Config, log *logging.Logger, l *lineup.Lineup) {
	if !cfg.Display.Verbose {
		return
	}
	for _, a := range l.Assignments {
		if a.IsMedia() {
			log.Debug(true, "CH %02d -> %s", a.Channel, render.MediaPath(cfg.PathPrefix, l.File(a)))
		} else {
			log.Debug(true, "CH %02d -> %s", a.Channel, a.Role)
		}
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Channels %d-%d: %d media, %d static, %d ccd",
		cfg.MinChannel, cfg.MaxChannel, stats.MediaChannels, stats.StaticCount, stats.CCDCount)
	if c := stats.Cycles(); c > 1 {
		log.Info("%d file(s) cycle %d time(s) across the lineup", stats.Files, c)
	}
	if len(stats.Rejected) > 0 {
		log.Warn("%d channel value(s) ignored", len(stats.Rejected))
	}
	if cfg.DryRun {
		log.Success("Dry run: %s declaration printed to stdout", display.FormatBytes(stats.BytesWritten))
		return
	}
	log.Success("Generated JavaScript file successfully at %s (%s)", cfg.OutputPath, display.FormatBytes(stats.BytesWritten))
}
