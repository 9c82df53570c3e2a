package templates

import (
	"fmt"
	"strings"
)

func treatmentURL(id int, suffix string) string {
	return fmt.Sprintf("/treatments/%d%s", id, suffix)
}

// isTextColumn reports whether column i of analysis.TableHeader holds text
// (Treatment, Notes) rather than a right-aligned figure.
func isTextColumn(i int) bool {
	return i == 1 || i == 7
}

// paragraphs splits narrative text on blank lines.
func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
