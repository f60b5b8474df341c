// Package pipeline runs the channelsurf batch: discover media files, parse
// and validate the special channel lists, assign the lineup, and write the
// declaration.
//
// Files:
//   - discover.go: non-recursive directory scan with extension filter.
//   - runner.go: Run, the validate → assign → serialize pipeline.
//   - stats.go: RunStats summary counters.
package pipeline
