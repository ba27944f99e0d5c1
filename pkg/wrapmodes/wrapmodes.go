// Package wrapmodes renders an import statement's name list into a
// column-width-constrained multi-line form under a selectable layout strategy.
package wrapmodes

import (
	"strings"

	"github.com/qsantos/impwrap/pkg/comments"
)

// grid greedily packs imports onto the opening line, word-wrapping an import
// under WhiteSpace when it would push the line past LineLength.
func grid(iface Interface) string {
	if len(iface.Imports) == 0 {
		return ""
	}

	statement := iface.Statement + "(" + iface.Imports[0]
	pending := iface.Comments
	for _, nextImport := range iface.Imports[1:] {
		nextStatement := comments.AddToLine(
			pending,
			statement+", "+nextImport,
			iface.RemoveComments,
			iface.CommentPrefix,
		)
		if lastLineLength(nextStatement, iface.LineSeparator)+1 > iface.LineLength {
			words := strings.Split(nextImport, " ")
			lines := []string{iface.WhiteSpace + words[0]}
			for _, word := range words[1:] {
				newLine := lines[len(lines)-1] + " " + word
				if len(newLine)+1 > iface.LineLength {
					lines = append(lines, iface.WhiteSpace+word)
				} else {
					lines[len(lines)-1] = newLine
				}
			}
			wrapped := strings.Join(lines, iface.LineSeparator)
			statement = comments.AddToLine(
				pending,
				statement+",",
				iface.RemoveComments,
				iface.CommentPrefix,
			) + iface.LineSeparator + wrapped
			// Comments were flushed with the line that just closed.
			pending = nil
		} else {
			statement += ", " + nextImport
		}
	}

	if iface.IncludeTrailingComma {
		statement += ","
	}
	return statement + ")"
}

// vertical places every import on its own line under WhiteSpace, regardless
// of how much would have fit.
func vertical(iface Interface) string {
	if len(iface.Imports) == 0 {
		return ""
	}

	firstImport := comments.AddToLine(
		iface.Comments,
		iface.Imports[0]+",",
		iface.RemoveComments,
		iface.CommentPrefix,
	) + iface.LineSeparator + iface.WhiteSpace

	trailingComma := ""
	if iface.IncludeTrailingComma {
		trailingComma = ","
	}
	return iface.Statement + "(" + firstImport +
		strings.Join(iface.Imports[1:], ","+iface.LineSeparator+iface.WhiteSpace) +
		trailingComma + ")"
}

// hangingIndent builds a single parenthesis-free statement, breaking with a
// backslash continuation onto Indent-prefixed lines. The 3 extra columns in
// the overflow check reserve room for the ", \" not yet present in the
// tentative rendering.
func hangingIndent(iface Interface) string {
	if len(iface.Imports) == 0 {
		return ""
	}

	statement := iface.Statement + iface.Imports[0]
	pending := iface.Comments
	for _, nextImport := range iface.Imports[1:] {
		nextStatement := comments.AddToLine(
			pending,
			statement+", "+nextImport,
			iface.RemoveComments,
			iface.CommentPrefix,
		)
		if lastLineLength(nextStatement, iface.LineSeparator)+3 > iface.LineLength {
			nextStatement = comments.AddToLine(
				pending,
				statement+", \\",
				iface.RemoveComments,
				iface.CommentPrefix,
			) + iface.LineSeparator + iface.Indent + nextImport
			pending = nil
		}
		statement = nextStatement
	}
	return statement
}

// verticalHangingIndent emits one import per Indent-prefixed line inside
// parentheses, with no length-driven decisions at all.
func verticalHangingIndent(iface Interface) string {
	trailingComma := ""
	if iface.IncludeTrailingComma {
		trailingComma = ","
	}
	return iface.Statement + "(" +
		comments.AddToLine(iface.Comments, "", iface.RemoveComments, iface.CommentPrefix) +
		iface.LineSeparator + iface.Indent +
		strings.Join(iface.Imports, ","+iface.LineSeparator+iface.Indent) +
		trailingComma + iface.LineSeparator + ")"
}

// verticalGridCommon packs imports onto Indent-prefixed lines, breaking when
// the projected line would exceed LineLength. needTrailingChar reserves one
// column for a separator or closing character after the final import; the
// same reservation is always applied while further imports remain.
func verticalGridCommon(iface Interface, needTrailingChar bool) string {
	if len(iface.Imports) == 0 {
		return ""
	}

	statement := iface.Statement + comments.AddToLine(
		iface.Comments,
		"(",
		iface.RemoveComments,
		iface.CommentPrefix,
	) + iface.LineSeparator + iface.Indent + iface.Imports[0]

	for i, nextImport := range iface.Imports[1:] {
		nextStatement := statement + ", " + nextImport
		currentLineLength := lastLineLength(nextStatement, iface.LineSeparator)
		if i+2 < len(iface.Imports) || needTrailingChar {
			// Account for the comma after this import, or the closing
			// character we are going to add.
			currentLineLength++
		}
		if currentLineLength > iface.LineLength {
			nextStatement = statement + "," + iface.LineSeparator + iface.Indent + nextImport
		}
		statement = nextStatement
	}

	if iface.IncludeTrailingComma {
		statement += ","
	}
	return statement
}

func verticalGrid(iface Interface) string {
	return verticalGridCommon(iface, true) + ")"
}

func verticalGridGrouped(iface Interface) string {
	return verticalGridCommon(iface, true) + iface.LineSeparator + ")"
}

func verticalGridGroupedNoComma(iface Interface) string {
	return verticalGridCommon(iface, false) + iface.LineSeparator + ")"
}

// noqa never reflows the import list. It only decides which comment or
// lint-suppression suffix to attach when the joined statement is overlong.
func noqa(iface Interface) string {
	retval := iface.Statement + strings.Join(iface.Imports, ", ")
	commentStr := strings.Join(iface.Comments, " ")
	if len(iface.Comments) > 0 {
		if len(retval)+len(iface.CommentPrefix)+1+len(commentStr) <= iface.LineLength {
			return retval + iface.CommentPrefix + " " + commentStr
		}
	} else if len(retval) <= iface.LineLength {
		return retval
	}
	if len(iface.Comments) > 0 {
		for _, comment := range iface.Comments {
			if comment == "NOQA" {
				return retval + iface.CommentPrefix + " " + commentStr
			}
		}
		return retval + iface.CommentPrefix + " NOQA " + commentStr
	}
	return retval + iface.CommentPrefix + " NOQA"
}
