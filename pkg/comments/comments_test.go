package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name          string
		line          string
		wantStatement string
		wantComment   string
	}{
		{"no comment", "from x import y", "from x import y", ""},
		{"trailing comment", "from x import y  # keep", "from x import y  ", "keep"},
		{"comment only", "# keep", "", "keep"},
		{"empty line", "", "", ""},
		{"first marker wins", "from x import y  # a # b", "from x import y  ", "a # b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, comment := Parse(tt.line)
			req.Equal(tt.wantStatement, statement, "Parse(%q) statement", tt.line)
			req.Equal(tt.wantComment, comment, "Parse(%q) comment", tt.line)
		})
	}
}

func TestAddToLine(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		comments []string
		original string
		removed  bool
		want     string
	}{
		{"no comments returns line unchanged", nil, "from x import y", false, "from x import y"},
		{"empty comment slice returns line unchanged", []string{}, "from x import y", false, "from x import y"},
		{"single comment appended", []string{"keep"}, "from x import y", false, "from x import y  # keep"},
		{"multiple comments joined", []string{"a", "b"}, "from x import y", false, "from x import y  # a; b"},
		{"duplicate comments collapsed", []string{"a", "a", "b"}, "from x import y", false, "from x import y  # a; b"},
		{"existing comment replaced", []string{"new"}, "from x import y  # old", false, "from x import y    # new"},
		{"removed strips existing comment", []string{"new"}, "from x import y  # old", true, "from x import y  "},
		{"removed without comment is a no-op", []string{"new"}, "from x import y", true, "from x import y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddToLine(tt.comments, tt.original, tt.removed, "  #")
			req.Equal(tt.want, result, "AddToLine(%v, %q, %v)", tt.comments, tt.original, tt.removed)
		})
	}
}

func TestAddToLineDoesNotDuplicateOnReattachment(t *testing.T) {
	req := require.New(t)

	once := AddToLine([]string{"keep"}, "from x import y", false, "  #")
	twice := AddToLine([]string{"keep"}, once, false, "  #")
	req.Equal(1, strings.Count(twice, "keep"))
	req.Equal(1, strings.Count(twice, "#"))
}
