package puzzle

import (
	"testing"

	"github.com/hpungsan/tubesort/internal/errors"
)

func TestParse_Valid(t *testing.T) {
	s, err := Parse("YRRR,YRYY,....,....")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.NumTubes() != 4 {
		t.Errorf("NumTubes() = %d, want 4", s.NumTubes())
	}
	if s.Capacity() != 4 {
		t.Errorf("Capacity() = %d, want 4", s.Capacity())
	}

	tubes := s.Tubes()
	if tubes[0][0] != "Y" || tubes[0][1] != "R" {
		t.Errorf("tube 0 = %v, want bottom Y then R", tubes[0])
	}
	if tubes[2][0] != Empty {
		t.Errorf("tube 2 slot 0 = %q, want empty", tubes[2][0])
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	s, err := Parse("  YR.. , ....  ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := s.Notation(); got != "YR..,...." {
		t.Errorf("Notation() = %q, want %q", got, "YR..,....")
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "blank", input: "   "},
		{name: "missing tube entry", input: "YR..,,...."},
		{name: "unequal capacity", input: "YR,RRR"},
		{name: "floating token", input: "Y.R.,...."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, errors.ErrInvalidPuzzle) {
				t.Errorf("Parse(%q) should return ErrInvalidPuzzle, got: %v", tt.input, err)
			}
		})
	}
}

func TestNotation_RoundTrip(t *testing.T) {
	inputs := []string{
		"YRRR,YRYY,....,....",
		"....,....",
		"AB..,BA..,....",
	}
	for _, in := range inputs {
		s, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if got := s.Notation(); got != in {
			t.Errorf("Notation() = %q, want %q", got, in)
		}
	}
}
