package wrapmodes

import "strings"

// Interface holds the full parameter set shared by every wrap mode.
type Interface struct {
	Statement            string   // prefix text already emitted, e.g. "from x import "
	Imports              []string // import names, consumed strictly in order
	WhiteSpace           string   // indent aligning continuation content under an opening construct
	Indent               string   // indent for block-style continuation lines
	LineLength           int      // maximum column width of any physical line
	Comments             []string // trailing comments attached to the statement as a whole
	LineSeparator        string   // literal newline token joining physical lines
	CommentPrefix        string   // literal text introducing a trailing comment
	IncludeTrailingComma bool     // append a separator after the last import before closing
	RemoveComments       bool     // drop comments instead of rendering them
}

// Formatter renders a statement under a single wrap mode. Formatters never
// mutate the Imports or Comments slices of the passed Interface.
type Formatter func(iface Interface) string

// lastLineLength returns the length of the last physical line of statement.
func lastLineLength(statement, lineSeparator string) int {
	if i := strings.LastIndex(statement, lineSeparator); i != -1 {
		return len(statement) - i - len(lineSeparator)
	}
	return len(statement)
}
