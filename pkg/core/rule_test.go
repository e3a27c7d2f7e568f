package core

import (
	"errors"
	"slices"
	"testing"
)

func TestParseRule(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"B3/S23", "B3/S23"},
		{"b3/s23", "B3/S23"},
		{"S23/B3", "B3/S23"},
		{"B36S23", "B36/S23"},
		{"highlife", "B36/S23"},
		{"Seeds", "B2/S"},
		{" B3678/S34678 ", "B3678/S34678"},
		{"B0/S8", "B0/S8"},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", tc.in, err)
		}
		if r.String() != tc.want {
			t.Fatalf("ParseRule(%q) = %s, want %s", tc.in, r, tc.want)
		}
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"", "B3", "S23", "B9/S2", "23/3", "B3/B3/S2", "B3/S2x"} {
		if _, err := ParseRule(in); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q) error = %v, want ErrInvalidRule", in, err)
		}
	}
}

func TestConwayRule(t *testing.T) {
	r, err := NewRule([]int{3}, []int{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if r != Conway {
		t.Fatalf("NewRule(3; 2,3) = %s, want %s", r, Conway)
	}
	cases := []struct {
		alive bool
		n     int
		want  bool
	}{
		{false, 2, false},
		{false, 3, true},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
	}
	for _, tc := range cases {
		if got := r.Next(tc.alive, tc.n); got != tc.want {
			t.Fatalf("Next(%v, %d) = %v, want %v", tc.alive, tc.n, got, tc.want)
		}
	}
}

func TestCountSet(t *testing.T) {
	s, err := NewCountSet(8, 0, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s.Counts(), []int{0, 3, 8}) {
		t.Fatalf("counts = %v", s.Counts())
	}
	if s.Has(-1) || s.Has(9) {
		t.Fatal("out-of-range counts reported as members")
	}
	if _, err := NewCountSet(9); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("NewCountSet(9) error = %v", err)
	}
}
