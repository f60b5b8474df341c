package lineup

import "errors"

// Fatal conditions. Each aborts the run before any output is written.
var (
	ErrDirectoryNotFound     = errors.New("video directory not found")
	ErrNoMediaFiles          = errors.New("no media files found")
	ErrOverlappingChannels   = errors.New("channels assigned to both static and ccd")
	ErrChannelBudgetExceeded = errors.New("more special channels than channels in range")
	ErrRangeTooLarge         = errors.New("channel range too large")
	ErrOutputWrite           = errors.New("cannot write output")
)
