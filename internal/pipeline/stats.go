package pipeline

import "github.com/backmassage/channelsurf/internal/lineup"

// RunStats summarizes one generator run.
type RunStats struct {
	Files         int // Media files discovered.
	Channels      int // Channels in range.
	MediaChannels int
	StaticCount   int
	CCDCount      int
	Rejected      []lineup.Rejected
	BytesWritten  int64
}

// Cycles reports how many times the file list wraps around the media
// channels (1 when every file plays at most once).
func (s *RunStats) Cycles() int {
	if s.Files == 0 || s.MediaChannels == 0 {
		return 0
	}
	return (s.MediaChannels + s.Files - 1) / s.Files
}
