package lineup

import "fmt"

// Assign builds the lineup for rng. Channels are visited in ascending
// order; a running counter picks files[counter % len(files)] for each
// channel without a role and advances only on that branch.
func Assign(rng Range, files []string, sp Specials) (*Lineup, error) {
	if len(files) == 0 {
		return nil, ErrNoMediaFiles
	}
	n := rng.Len()
	if n > MaxSpan {
		return nil, fmt.Errorf("%w: %s spans %d channels, limit is %d", ErrRangeTooLarge, rng, n, MaxSpan)
	}
	if err := sp.Validate(rng); err != nil {
		return nil, err
	}

	l := &Lineup{
		Range:       rng,
		Files:       append([]string(nil), files...),
		Assignments: make([]Assignment, 0, n),
	}
	next := 0
	for i := range n {
		ch := rng.Min + i
		if role, ok := sp.RoleOf(ch); ok {
			l.Assignments = append(l.Assignments, Assignment{Channel: ch, Role: role, FileIndex: -1})
			continue
		}
		l.Assignments = append(l.Assignments, Assignment{Channel: ch, FileIndex: next % len(files)})
		next++
	}
	return l, nil
}
