// Package render turns glint spans into ANSI-styled terminal strings using
// Lip Gloss. Base spans carry the zero lipgloss.Style and render as plain
// text, so output concatenates back to the input when no pattern matches.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glint"
)

// Line renders one segmented line to a terminal string.
func Line(l glint.Line[lipgloss.Style]) string {
	var b strings.Builder
	for _, span := range l.Spans {
		b.WriteString(span.Style.Render(span.Text))
	}
	return b.String()
}

// Text renders segmented multi-line text, joining lines with newlines.
func Text(t glint.Text[lipgloss.Style]) string {
	lines := make([]string, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, Line(l))
	}
	return strings.Join(lines, "\n")
}

// Highlight segments text against pattern and renders it in one step, with
// style applied to every match. Returns an error when the pattern does not
// compile.
func Highlight(text, pattern string, style lipgloss.Style) (string, error) {
	segmented, err := glint.SegmentText(text, glint.NewPattern(pattern), style)
	if err != nil {
		return "", err
	}
	return Text(segmented), nil
}
