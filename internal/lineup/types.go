package lineup

import (
	"fmt"
	"math"
	"slices"
)

// Role is a non-media channel designation.
type Role string

const (
	RoleStatic Role = "static" // Static noise overlay.
	RoleCCD    Role = "ccd"    // Live camera feed.
)

// MaxSpan is the largest number of channels a lineup may cover.
const MaxSpan = 10000

// Range is an inclusive span of channel numbers.
type Range struct {
	Min int
	Max int
}

// Contains reports whether ch lies inside r.
func (r Range) Contains(ch int) bool { return ch >= r.Min && ch <= r.Max }

// Len returns the number of channels in r, saturating at math.MaxInt.
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	n := uint64(r.Max) - uint64(r.Min)
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Min, r.Max) }

// ChannelSet is a set of channel numbers.
type ChannelSet map[int]struct{}

// NewChannelSet builds a set from the given channels.
func NewChannelSet(chs ...int) ChannelSet {
	s := make(ChannelSet, len(chs))
	for _, ch := range chs {
		s[ch] = struct{}{}
	}
	return s
}

// Has reports whether ch is in s.
func (s ChannelSet) Has(ch int) bool {
	_, ok := s[ch]
	return ok
}

// Sorted returns the members of s in ascending order.
func (s ChannelSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for ch := range s {
		out = append(out, ch)
	}
	slices.Sort(out)
	return out
}

// Specials holds the two operator-supplied role sets.
type Specials struct {
	Static ChannelSet
	CCD    ChannelSet
}

// RoleOf returns the special role of ch, if any. Static wins over ccd,
// though a validated Specials never has both.
func (s Specials) RoleOf(ch int) (Role, bool) {
	if s.Static.Has(ch) {
		return RoleStatic, true
	}
	if s.CCD.Has(ch) {
		return RoleCCD, true
	}
	return "", false
}

// Assignment is the source of one channel: either a role or a media file.
type Assignment struct {
	Channel   int
	Role      Role // Empty for media channels.
	FileIndex int  // Index into Lineup.Files; -1 for role channels.
}

// IsMedia reports whether the channel plays a media file.
func (a Assignment) IsMedia() bool { return a.Role == "" }

// Lineup is the complete channel mapping, ascending by channel.
type Lineup struct {
	Range       Range
	Files       []string
	Assignments []Assignment
}

// File returns the media file name played by a, or "" for role channels.
func (l *Lineup) File(a Assignment) string {
	if !a.IsMedia() {
		return ""
	}
	return l.Files[a.FileIndex]
}

// Counts returns the number of media, static and ccd channels.
func (l *Lineup) Counts() (media, static, ccd int) {
	for _, a := range l.Assignments {
		switch a.Role {
		case RoleStatic:
			static++
		case RoleCCD:
			ccd++
		default:
			media++
		}
	}
	return media, static, ccd
}
