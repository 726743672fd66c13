package walker

import (
	"errors"
	"testing"
)

func TestParseFolderName(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		caseNumber string
	}{
		{"01-05-1234", "05", "1234"},
		{"01- 05- 1234", "05", "1234"},
		{"01 - 05 - 1234", "05", "1234"},
		{"PROC-15-9999", "15", "9999"},
		{"a-b-c", "b", "c"},
		{"01-\t05  -1234", "05", "1234"},
		{"x--y", "", "y"},
	}
	for _, tt := range tests {
		day, num, err := ParseFolderName(tt.name)
		if err != nil {
			t.Errorf("ParseFolderName(%q): unexpected error: %v", tt.name, err)
			continue
		}
		if day != tt.day || num != tt.caseNumber {
			t.Errorf("ParseFolderName(%q): expected (%q, %q), got (%q, %q)", tt.name, tt.day, tt.caseNumber, day, num)
		}
	}
}

func TestParseFolderName_NormalizationIsEquivalent(t *testing.T) {
	d1, n1, err1 := ParseFolderName("01- 05- 1234")
	d2, n2, err2 := ParseFolderName("01-05-1234")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if d1 != d2 || n1 != n2 {
		t.Errorf("expected equal results, got (%q, %q) and (%q, %q)", d1, n1, d2, n2)
	}
}

func TestParseFolderName_Malformed(t *testing.T) {
	for _, name := range []string{
		"bad_name",
		"no-dashes-here-extra-segment",
		"01-05",
		"",
		"a-b-c-d",
	} {
		_, _, err := ParseFolderName(name)
		if err == nil {
			t.Errorf("ParseFolderName(%q): expected error", name)
			continue
		}
		if !errors.Is(err, ErrMalformedCaseFolder) {
			t.Errorf("ParseFolderName(%q): expected ErrMalformedCaseFolder, got %v", name, err)
		}
	}
}

func TestIsDigits(t *testing.T) {
	tests := map[string]bool{
		"2024": true,
		"03":   true,
		"0":    true,
		"":     false,
		"misc": false,
		"20a4": false,
		"-1":   false,
		"١٢":   false,
	}
	for in, want := range tests {
		if got := isDigits(in); got != want {
			t.Errorf("isDigits(%q): expected %v, got %v", in, want, got)
		}
	}
}
