package identity

import (
	"fmt"
	"strconv"
	"strings"
)

type segmentKind int

const (
	segCountry segmentKind = iota
	segGender
	segLocality
	segInitials
	segProjectID
	segSequence
)

// segment is one field of an identity code. max == 0 means unbounded.
type segment struct {
	kind   segmentKind
	min    int
	max    int
	accept func(rune) bool
}

func (s segment) fixed() bool {
	return s.min == s.max
}

func (s segment) valid(v string) bool {
	if len(v) < s.min || (s.max > 0 && len(v) > s.max) {
		return false
	}
	for _, r := range v {
		if !s.accept(r) {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isUpperAlnum(r rune) bool {
	return isUpper(r) || isDigit(r)
}
func isGender(r rune) bool {
	return r == 'M' || r == 'F' || r == 'N'
}

func country() segment { return segment{kind: segCountry, min: 2, max: 2, accept: isUpper} }
func gender() segment  { return segment{kind: segGender, min: 1, max: 1, accept: isGender} }
func locality() segment {
	return segment{kind: segLocality, min: 3, max: 3, accept: isUpperAlnum}
}
func initials() segment  { return segment{kind: segInitials, min: 2, max: 3, accept: isUpper} }
func projectID() segment { return segment{kind: segProjectID, min: 3, accept: isDigit} }
func sequence(width int) segment {
	return segment{kind: segSequence, min: width, max: width, accept: isDigit}
}

// fields are the resolved, normalised inputs of a code.
type fields struct {
	country   string
	gender    string
	locality  string
	initials  string
	projectID uint32
}

// layout is the ordered field specification of one code variant.
type layout []segment

func (l layout) sequenceWidth() int {
	for _, s := range l {
		if s.kind == segSequence {
			return s.max
		}
	}
	return 0
}

func (l layout) maxSequence() int {
	n := 1
	for i := 0; i < l.sequenceWidth(); i++ {
		n *= 10
	}
	return n - 1
}

func (l layout) encode(f fields, seq int) (string, error) {
	if seq < 1 || seq > l.maxSequence() {
		return "", fmt.Errorf("sequence %d out of range 1..%d: %w", seq, l.maxSequence(), ErrCodeSpaceExhausted)
	}

	var b strings.Builder
	for _, s := range l {
		var v string
		switch s.kind {
		case segCountry:
			v = f.country
		case segGender:
			v = f.gender
		case segLocality:
			v = f.locality
		case segInitials:
			v = f.initials
		case segProjectID:
			v = fmt.Sprintf("%0*d", s.min, f.projectID)
		case segSequence:
			v = fmt.Sprintf("%0*d", s.min, seq)
		}
		if !s.valid(v) {
			return "", fmt.Errorf("segment %d value %q: %w", s.kind, v, ErrInvalidAttributes)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

// sequence extracts the numeric sequence without validating the other segments,
// so legacy codes with unusual letters still count towards the scope maximum.
func (l layout) sequence(code string) (int, bool) {
	minLen, fixedLen := 0, true
	for _, s := range l {
		minLen += s.min
		if !s.fixed() {
			fixedLen = false
		}
	}
	if len(code) < minLen || (fixedLen && len(code) != minLen) {
		return 0, false
	}

	idx := -1
	for i, s := range l {
		if s.kind == segSequence {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}

	start, prefixFixed := 0, true
	for _, s := range l[:idx] {
		if !s.fixed() {
			prefixFixed = false
			break
		}
		start += s.min
	}
	if !prefixFixed {
		end := len(code)
		for _, s := range l[idx+1:] {
			end -= s.min
		}
		start = end - l[idx].min
	}

	digits := code[start : start+l[idx].min]
	if !l[idx].valid(digits) {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// split cuts a code into its segments, consuming fixed-width segments from both
// ends. At most two variable-width segments may remain in the middle; the first
// takes the longest prefix that leaves a valid remainder.
func (l layout) split(code string) (map[segmentKind]string, bool) {
	parts := make(map[segmentKind]string, len(l))
	head, tail := 0, len(l)
	lo, hi := 0, len(code)

	for head < tail && l[head].fixed() {
		s := l[head]
		if hi-lo < s.min {
			return nil, false
		}
		parts[s.kind] = code[lo : lo+s.min]
		lo += s.min
		head++
	}
	for tail > head && l[tail-1].fixed() {
		s := l[tail-1]
		if hi-lo < s.min {
			return nil, false
		}
		parts[s.kind] = code[hi-s.min : hi]
		hi -= s.min
		tail--
	}

	middle := code[lo:hi]
	switch tail - head {
	case 0:
		if middle != "" {
			return nil, false
		}
	case 1:
		parts[l[head].kind] = middle
	case 2:
		first, second := l[head], l[head+1]
		k := -1
		longest := len(middle)
		if first.max > 0 && first.max < longest {
			longest = first.max
		}
		for n := longest; n >= first.min; n-- {
			if first.valid(middle[:n]) && second.valid(middle[n:]) {
				k = n
				break
			}
		}
		if k < 0 {
			return nil, false
		}
		parts[first.kind] = middle[:k]
		parts[second.kind] = middle[k:]
	default:
		return nil, false
	}

	for _, s := range l {
		if !s.valid(parts[s.kind]) {
			return nil, false
		}
	}
	return parts, true
}
