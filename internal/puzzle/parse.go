package puzzle

import (
	"strings"

	"github.com/hpungsan/tubesort/internal/errors"
)

// Parse builds a State from compact notation: tubes separated by commas, one
// rune per slot bottom-to-top, '.' marking an empty slot. Example with
// capacity 4 and two empty tubes:
//
//	YRRR,YRYY,....,....
//
// Whitespace around tubes is ignored. Validation (uniform capacity, no gaps)
// is delegated to New.
func Parse(s string) (State, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return State{}, errors.NewInvalidPuzzle("puzzle notation is empty")
	}

	parts := strings.Split(s, ",")
	tubes := make([]Tube, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return State{}, errors.NewInvalidPuzzle("empty tube entry; use '.' for empty slots")
		}
		tube := make(Tube, 0, len(part))
		for _, r := range part {
			if r == '.' {
				tube = append(tube, Empty)
			} else {
				tube = append(tube, Color(r))
			}
		}
		tubes = append(tubes, tube)
	}
	return New(tubes)
}

// Notation renders the state back into the compact form accepted by Parse.
// Multi-rune colors are not representable; states built via Parse round-trip.
func (s State) Notation() string {
	var b strings.Builder
	for i := range s.tubes {
		if i > 0 {
			b.WriteByte(',')
		}
		for _, c := range s.tubes[i] {
			if c == Empty {
				b.WriteByte('.')
			} else {
				b.WriteString(string(c))
			}
		}
	}
	return b.String()
}
