package util

import "testing"

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "needs a pump", "needs a pump"},
		{"lf", "needs\na pump", "needs a pump"},
		{"crlf", "needs\r\na pump", "needs a pump"},
		{"cr", "needs\ra pump", "needs a pump"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SingleLine(tt.input); got != tt.want {
				t.Errorf("SingleLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSingleLinePtr(t *testing.T) {
	if SingleLinePtr(nil) != nil {
		t.Error("SingleLinePtr(nil) should be nil")
	}
	s := "a\nb"
	if got := SingleLinePtr(&s); got == nil || *got != "a b" {
		t.Errorf("SingleLinePtr(a\\nb) = %v", got)
	}
}
