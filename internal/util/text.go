package util

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// SingleLine replaces line breaks with spaces so a free-text field stays on
// one line in tables and exported CSV rows.
// Example: "needs\r\na pump" -> "needs a pump"
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}

// SingleLinePtr is SingleLine for optional fields. Nil stays nil.
func SingleLinePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := SingleLine(*s)
	return &v
}
