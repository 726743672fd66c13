package walker

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultPattern selects every PDF.
const DefaultPattern = `.*\.pdf$`

// ErrInvalidPattern is returned when the selection pattern does not compile.
var ErrInvalidPattern = errors.New("invalid pdf pattern")

// Selector decides which PDF filenames are extracted. Matching is
// case-insensitive and anchored at the start of the name only, so trailing
// characters after the match are allowed.
type Selector struct {
	pattern string
	re      *regexp.Regexp
}

// NewSelector compiles pattern. An empty pattern means DefaultPattern.
func NewSelector(pattern string) (*Selector, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Selector{pattern: pattern, re: re}, nil
}

func (s *Selector) Matches(filename string) bool {
	return s.re.MatchString(filename)
}

func (s *Selector) Pattern() string {
	return s.pattern
}

// MatchesPattern is the one-shot form of NewSelector(pattern).Matches.
// It panics if pattern does not compile.
func MatchesPattern(filename, pattern string) bool {
	s, err := NewSelector(pattern)
	if err != nil {
		panic(err)
	}
	return s.Matches(filename)
}
