package walker

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedCaseFolder is returned for folder names that do not reduce to
// exactly three dash-separated segments.
var ErrMalformedCaseFolder = errors.New("malformed case folder name")

var dashRe = regexp.MustCompile(`\s*-\s*`)

// ParseFolderName splits a case folder name such as "01-05-1234" or
// "01- 05 - 1234" into its day and case number. No numeric validation is
// done on either part.
func ParseFolderName(name string) (day, caseNumber string, err error) {
	normalized := dashRe.ReplaceAllString(name, "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("%w: %q has %d segments", ErrMalformedCaseFolder, name, len(parts))
	}
	return parts[1], parts[2], nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
