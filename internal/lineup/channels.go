package lineup

import (
	"fmt"
	"strconv"
	"strings"
)

// Rejected is a channel token dropped during parsing. Rejects are warnings,
// not errors: the rest of the list is still used.
type Rejected struct {
	Role   Role
	Token  string
	Reason string
}

func (r Rejected) String() string {
	return fmt.Sprintf("%s channel %q ignored: %s", r.Role, r.Token, r.Reason)
}

// ParseChannels splits a comma-separated list into a set, dropping tokens
// that are not integers or fall outside rng. An empty or blank list is
// valid and yields an empty set. Duplicates collapse silently.
func ParseChannels(raw string, role Role, rng Range) (ChannelSet, []Rejected) {
	set := make(ChannelSet)
	var rejected []Rejected
	if strings.TrimSpace(raw) == "" {
		return set, nil
	}
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		ch, err := strconv.Atoi(tok)
		if err != nil {
			rejected = append(rejected, Rejected{Role: role, Token: tok, Reason: "not a whole number"})
			continue
		}
		if !rng.Contains(ch) {
			rejected = append(rejected, Rejected{
				Role:   role,
				Token:  tok,
				Reason: fmt.Sprintf("outside channel range %s", rng),
			})
			continue
		}
		set[ch] = struct{}{}
	}
	return set, rejected
}

// Validate checks that the role sets are disjoint and that together they
// leave a non-negative number of channels for media.
func (s Specials) Validate(rng Range) error {
	var overlap []string
	for _, ch := range s.Static.Sorted() {
		if s.CCD.Has(ch) {
			overlap = append(overlap, strconv.Itoa(ch))
		}
	}
	if len(overlap) > 0 {
		return fmt.Errorf("%w: %s", ErrOverlappingChannels, strings.Join(overlap, ", "))
	}
	if n := len(s.Static) + len(s.CCD); n > rng.Len() {
		return fmt.Errorf("%w: %d special channels, %d in range %s", ErrChannelBudgetExceeded, n, rng.Len(), rng)
	}
	return nil
}
