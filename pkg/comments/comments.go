package comments

import "strings"

// Parse splits a line into its statement part and the trailing comment text.
// The comment marker is the literal "#" regardless of the configured prefix.
func Parse(line string) (string, string) {
	if start := strings.Index(line, "#"); start != -1 {
		return line[:start], strings.TrimSpace(line[start+1:])
	}
	return line, ""
}

// AddToLine appends the pending comments to the given line. Any comment
// already present on the line is stripped first, so repeated calls with the
// same comment set produce the same result. When removed is set the line is
// returned with its comment stripped and nothing appended.
func AddToLine(comments []string, original string, removed bool, commentPrefix string) string {
	if removed {
		statement, _ := Parse(original)
		return statement
	}

	if len(comments) == 0 {
		return original
	}

	var unique []string
	for _, comment := range comments {
		if !contains(unique, comment) {
			unique = append(unique, comment)
		}
	}

	statement, _ := Parse(original)
	return statement + commentPrefix + " " + strings.Join(unique, "; ")
}

func contains(comments []string, comment string) bool {
	for _, c := range comments {
		if c == comment {
			return true
		}
	}
	return false
}
