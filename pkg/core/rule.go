package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is returned when a rule string or neighbor count is malformed.
var ErrInvalidRule = errors.New("invalid rule")

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// CountSet is a set of neighbor counts in [0, MaxNeighbors].
type CountSet uint16

// NewCountSet builds a set from the given counts.
func NewCountSet(counts ...int) (CountSet, error) {
	var s CountSet
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			return 0, fmt.Errorf("%w: neighbor count %d out of range [0,%d]", ErrInvalidRule, n, MaxNeighbors)
		}
		s |= 1 << n
	}
	return s, nil
}

// Has reports whether n is a member of the set.
func (s CountSet) Has(n int) bool {
	if n < 0 || n > MaxNeighbors {
		return false
	}
	return s&(1<<n) != 0
}

// Counts lists the members in ascending order.
func (s CountSet) Counts() []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s CountSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Rule is a life-like rule: dead cells with a neighbor count in Birth come
// alive, live cells with a count in Survival stay alive.
type Rule struct {
	Birth    CountSet
	Survival CountSet
}

// Conway is the classic Game of Life rule, B3/S23.
var Conway = Rule{Birth: 1 << 3, Survival: 1<<2 | 1<<3}

var presets = map[string]string{
	"life":     "B3/S23",
	"conway":   "B3/S23",
	"highlife": "B36/S23",
	"seeds":    "B2/S",
	"daynight": "B3678/S34678",
	"maze":     "B3/S12345",
}

// NewRule builds a rule from explicit birth and survival counts.
func NewRule(birth, survival []int) (Rule, error) {
	b, err := NewCountSet(birth...)
	if err != nil {
		return Rule{}, fmt.Errorf("birth: %w", err)
	}
	s, err := NewCountSet(survival...)
	if err != nil {
		return Rule{}, fmt.Errorf("survival: %w", err)
	}
	return Rule{Birth: b, Survival: s}, nil
}

// ParseRule parses B/S notation such as "B3/S23" or "s23/b3", or one of the
// preset names (life, highlife, seeds, daynight, maze).
func ParseRule(text string) (Rule, error) {
	text = strings.TrimSpace(text)
	if preset, ok := presets[strings.ToLower(text)]; ok {
		text = preset
	}
	upper := strings.ToUpper(text)
	if upper == "" {
		return Rule{}, fmt.Errorf("%w: empty rule", ErrInvalidRule)
	}

	var r Rule
	var target *CountSet
	seenB, seenS := false, false
	for _, ch := range upper {
		switch {
		case ch == 'B':
			if seenB {
				return Rule{}, fmt.Errorf("%w: %q repeats B", ErrInvalidRule, text)
			}
			seenB = true
			target = &r.Birth
		case ch == 'S':
			if seenS {
				return Rule{}, fmt.Errorf("%w: %q repeats S", ErrInvalidRule, text)
			}
			seenS = true
			target = &r.Survival
		case ch == '/':
			target = nil
		case ch >= '0' && ch <= '8':
			if target == nil {
				return Rule{}, fmt.Errorf("%w: %q has a count outside B or S", ErrInvalidRule, text)
			}
			*target |= 1 << (ch - '0')
		default:
			return Rule{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidRule, ch, text)
		}
	}
	if !seenB || !seenS {
		return Rule{}, fmt.Errorf("%w: %q needs both B and S parts", ErrInvalidRule, text)
	}
	return r, nil
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

// Next applies the rule to a cell with the given liveness and neighbor count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survival.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}
