// Package solver finds minimum-pour solutions to water-sort puzzles via
// best-first graph search over puzzle.State values.
package solver

import (
	"container/heap"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/tubesort/internal/errors"
	"github.com/hpungsan/tubesort/internal/puzzle"
)

// SolveInput contains parameters for one search run.
type SolveInput struct {
	State puzzle.State

	// MaxExpansions bounds how many distinct states the search may expand.
	// 0 means unbounded: the search runs to frontier exhaustion.
	MaxExpansions int
}

// SolveOutput contains the result of one search run. Solved=false with a nil
// error means the frontier was exhausted without reaching a solved state; it
// is an expected outcome, not a failure.
type SolveOutput struct {
	RunID     string        `json:"run_id"`
	Solved    bool          `json:"solved"`
	Moves     []puzzle.Move `json:"moves,omitempty"`
	Expanded  int           `json:"expanded"`
	Generated int           `json:"generated"`
}

// node is one frontier entry: a state, the pours taken to reach it, and the
// ordering key. Multiple entries may reference equal states with different
// costs; only the first popped survives the visited check.
type node struct {
	state    puzzle.State
	cost     int // accumulated pours from the initial state
	priority int // cost + heuristic estimate of remaining pours
	path     []puzzle.Move
	seq      int // insertion order, the final tie-break
}

// frontier is a min-heap of nodes ordered by (priority, cost, seq).
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// Solve runs best-first search from input.State and returns the pour sequence
// reaching a solved state, or Solved=false once the reachable space is
// exhausted. Duplicate states are discarded lazily at pop time, so each
// distinct state is expanded at most once and the search terminates on any
// finite puzzle. The returned path is optimal with respect to the unit move
// cost and the (non-admissible) heuristic ordering.
func Solve(input SolveInput) (*SolveOutput, error) {
	runID, err := newRunID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	out := &SolveOutput{RunID: runID}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &node{state: input.State, cost: 0, priority: 0})
	seq := 1

	visited := make(map[string]struct{})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		key := cur.state.Key()
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		if cur.state.IsSolved() {
			out.Solved = true
			out.Moves = cur.path
			return out, nil
		}

		if input.MaxExpansions > 0 && out.Expanded >= input.MaxExpansions {
			return nil, errors.NewLimitExceeded(input.MaxExpansions)
		}
		out.Expanded++

		for _, m := range cur.state.LegalMoves() {
			next, err := cur.state.Apply(m)
			if err != nil {
				// LegalMoves and Apply agree on legality; reaching this
				// means a solver bug, not a caller mistake.
				return nil, errors.NewInternal(err)
			}
			path := make([]puzzle.Move, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, m)
			heap.Push(open, &node{
				state:    next,
				cost:     cur.cost + 1,
				priority: cur.cost + 1 + next.Heuristic(),
				path:     path,
				seq:      seq,
			})
			seq++
			out.Generated++
		}
	}

	// Frontier exhausted: no reachable solved state.
	return out, nil
}

// newRunID returns a ULID identifying one search run in diagnostic output.
func newRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
