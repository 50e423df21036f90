// Package puzzle models a water-sort puzzle configuration: N tubes of fixed
// capacity whose slots hold color tokens. A State is a value; transitions
// (pours) produce new values and never mutate the receiver.
package puzzle

import (
	"strings"

	"github.com/hpungsan/tubesort/internal/errors"
)

// Color is an opaque color token. The zero value Empty marks an unfilled slot
// and is not a color.
type Color string

// Empty is the sentinel for an unfilled slot.
const Empty Color = ""

// Tube is an ordered sequence of slots, bottom at index 0. Non-empty slots
// form a contiguous run starting at the bottom.
type Tube []Color

// Move is a pour from one tube into another, identified by 0-based indices.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// State is one puzzle configuration. It is a value type: two states are equal
// iff their tubes are equal slot-wise. All transitions return new states.
type State struct {
	tubes    []Tube
	capacity int
}

// New validates the initial configuration and returns a State. Tube count and
// capacity are inferred from the input. All tubes must share the same
// capacity, and filled slots must sit contiguously at the bottom of each tube.
func New(tubes []Tube) (State, error) {
	if len(tubes) == 0 {
		return State{}, errors.NewInvalidPuzzle("puzzle must have at least one tube")
	}
	capacity := len(tubes[0])
	if capacity == 0 {
		return State{}, errors.NewInvalidPuzzle("tube capacity must be at least 1")
	}
	for _, tube := range tubes {
		if len(tube) != capacity {
			return State{}, errors.NewInvalidPuzzle("all tubes must share the same capacity")
		}
		seenEmpty := false
		for _, c := range tube {
			if c == Empty {
				seenEmpty = true
			} else if seenEmpty {
				return State{}, errors.NewInvalidPuzzle("tube slots must fill from the bottom without gaps")
			}
		}
	}

	owned := make([]Tube, len(tubes))
	for i, tube := range tubes {
		owned[i] = append(Tube(nil), tube...)
	}
	return State{tubes: owned, capacity: capacity}, nil
}

// NumTubes returns the number of tubes.
func (s State) NumTubes() int { return len(s.tubes) }

// Capacity returns the shared tube capacity.
func (s State) Capacity() int { return s.capacity }

// Tubes returns a copy of the tube contents.
func (s State) Tubes() []Tube {
	out := make([]Tube, len(s.tubes))
	for i, tube := range s.tubes {
		out[i] = append(Tube(nil), tube...)
	}
	return out
}

// topIndex returns the index of the highest filled slot in tube i, or -1 if
// the tube is empty.
func (s State) topIndex(i int) int {
	tube := s.tubes[i]
	for j := len(tube) - 1; j >= 0; j-- {
		if tube[j] != Empty {
			return j
		}
	}
	return -1
}

// emptySlots returns the number of unfilled slots in tube i.
func (s State) emptySlots(i int) int {
	n := 0
	for _, c := range s.tubes[i] {
		if c == Empty {
			n++
		}
	}
	return n
}

// IsSolved reports whether every tube contains at most one distinct non-empty
// color. Empty tubes count as solved, as do partially filled uniform tubes.
func (s State) IsSolved() bool {
	for i := range s.tubes {
		var seen Color
		for _, c := range s.tubes[i] {
			if c == Empty {
				continue
			}
			if seen == Empty {
				seen = c
			} else if c != seen {
				return false
			}
		}
	}
	return true
}

// LegalMoves enumerates every legal pour, sources in ascending index order
// with destinations nested in ascending index order. A pour is legal when the
// source has a top color and the destination is either entirely empty, or
// shows the same top color and has at least one free slot. The enumeration
// order is stable; the solver relies on it for deterministic tie-breaking.
func (s State) LegalMoves() []Move {
	var moves []Move
	for from := range s.tubes {
		ft := s.topIndex(from)
		if ft < 0 {
			continue
		}
		fromColor := s.tubes[from][ft]
		for to := range s.tubes {
			if to == from {
				continue
			}
			tt := s.topIndex(to)
			if tt < 0 {
				moves = append(moves, Move{From: from, To: to})
				continue
			}
			if s.tubes[to][tt] == fromColor && tt < s.capacity-1 {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Apply pours tube m.From into tube m.To and returns the resulting state. The
// maximal run of identical colors at the top of the source moves, capped by
// the free slots in the destination. The receiver is left untouched. The
// solver only applies moves it generated itself, but Apply still rejects
// illegal pours rather than produce a corrupt state.
func (s State) Apply(m Move) (State, error) {
	if m.From < 0 || m.From >= len(s.tubes) || m.To < 0 || m.To >= len(s.tubes) {
		return State{}, errors.NewInvalidMove(m.From, m.To, "tube index out of range")
	}
	if m.From == m.To {
		return State{}, errors.NewInvalidMove(m.From, m.To, "source and destination are the same tube")
	}
	ft := s.topIndex(m.From)
	if ft < 0 {
		return State{}, errors.NewInvalidMove(m.From, m.To, "source tube is empty")
	}
	color := s.tubes[m.From][ft]

	tt := s.topIndex(m.To)
	if tt >= 0 {
		if s.tubes[m.To][tt] != color {
			return State{}, errors.NewInvalidMove(m.From, m.To, "destination top color does not match")
		}
		if tt == s.capacity-1 {
			return State{}, errors.NewInvalidMove(m.From, m.To, "destination tube is full")
		}
	}

	// Length of the identical-color run at the top of the source.
	run := 0
	for j := ft; j >= 0 && s.tubes[m.From][j] == color; j-- {
		run++
	}
	k := min(run, s.emptySlots(m.To))

	next := State{tubes: make([]Tube, len(s.tubes)), capacity: s.capacity}
	copy(next.tubes, s.tubes)
	next.tubes[m.From] = append(Tube(nil), s.tubes[m.From]...)
	next.tubes[m.To] = append(Tube(nil), s.tubes[m.To]...)

	for j := 0; j < k; j++ {
		next.tubes[m.From][ft-j] = Empty
		next.tubes[m.To][tt+1+j] = color
	}
	return next, nil
}

// Heuristic estimates the number of pours remaining. Each tube holding u > 1
// distinct colors contributes u-1; a tube holding at least one color and at
// least one empty slot additionally contributes its empty-slot count. The
// formula can overestimate, so the search is not guaranteed admissible A*;
// it is kept as-is for behavioral fidelity with the tuned reference ordering.
func (s State) Heuristic() int {
	cost := 0
	for i := range s.tubes {
		distinct := map[Color]struct{}{}
		for _, c := range s.tubes[i] {
			if c != Empty {
				distinct[c] = struct{}{}
			}
		}
		if len(distinct) > 1 {
			cost += len(distinct) - 1
		}
		if empty := s.emptySlots(i); empty > 0 && len(distinct) > 0 {
			cost += empty
		}
	}
	return cost
}

// Colors returns the multiset of non-empty colors across all tubes. Legal
// transitions conserve it.
func (s State) Colors() map[Color]int {
	counts := map[Color]int{}
	for i := range s.tubes {
		for _, c := range s.tubes[i] {
			if c != Empty {
				counts[c]++
			}
		}
	}
	return counts
}

// Key returns a structural key suitable for visited-set membership. Two
// states have the same key iff they are equal slot-wise.
func (s State) Key() string {
	var b strings.Builder
	for i := range s.tubes {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, c := range s.tubes[i] {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(string(c))
		}
	}
	return b.String()
}

// Equal reports slot-wise equality with other.
func (s State) Equal(other State) bool {
	if len(s.tubes) != len(other.tubes) || s.capacity != other.capacity {
		return false
	}
	return s.Key() == other.Key()
}

// String renders the state one tube per line, bottom-to-top left-to-right,
// with '.' for empty slots. Diagnostic only.
func (s State) String() string {
	var b strings.Builder
	for i := range s.tubes {
		b.WriteByte('|')
		for _, c := range s.tubes[i] {
			if c == Empty {
				b.WriteByte('.')
			} else {
				b.WriteString(string(c))
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
