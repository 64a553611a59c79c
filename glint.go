// Package glint partitions text into ordered styled spans by regular
// expression match. Given a line (or multi-line block) and a pattern, it
// produces spans that cover the input exactly once, left to right, with
// matching spans carrying a caller-supplied highlight style and everything
// else carrying the base (zero) style.
//
// The package is generic over the style representation: it attaches style
// values to spans but never inspects or compares them, so any host
// presentation type works (lipgloss.Style in this repo's own tooling, but
// also tcell styles, plain strings in tests, and so on).
package glint

import (
	"strings"
)

// Span is a contiguous slice of a source line paired with a single style.
// Spans produced for one line, concatenated in order, reconstruct the line
// exactly. Unmatched spans carry the zero value of S.
type Span[S any] struct {
	Text  string
	Style S
}

// Line is the ordered sequence of spans for one row of text. It never
// contains an embedded newline.
type Line[S any] struct {
	Spans []Span[S]
}

// String concatenates the span text, reconstructing the source line.
func (l Line[S]) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Text is the ordered sequence of lines for a multi-line input.
type Text[S any] struct {
	Lines []Line[S]
}

// String reconstructs the source text, joining lines with newlines.
func (t Text[S]) String() string {
	var b strings.Builder
	for i, l := range t.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// SegmentLine scans line for all non-overlapping matches of pattern,
// leftmost first, and returns the line split into spans: matches carry
// highlight, gaps between matches carry the zero style. Adjacent matches
// produce no empty separator span, and an empty line produces zero spans.
//
// An uncompilable pattern returns an *InvalidPatternError; the line is
// never partially segmented.
func SegmentLine[S any](line string, pattern Pattern, highlight S) (Line[S], error) {
	m, err := pattern.compile()
	if err != nil {
		return Line[S]{}, err
	}
	return segmentLine(line, m, highlight), nil
}

// SegmentText splits text on newline characters and segments each resulting
// line with SegmentLine semantics. Empty lines from consecutive newlines or
// a trailing newline are preserved, so the result always holds exactly
// count('\n')+1 lines in input order.
//
// The pattern is compiled once and shared across every line.
func SegmentText[S any](text string, pattern Pattern, highlight S) (Text[S], error) {
	m, err := pattern.compile()
	if err != nil {
		return Text[S]{}, err
	}
	raw := strings.Split(text, "\n")
	lines := make([]Line[S], 0, len(raw))
	for _, l := range raw {
		lines = append(lines, segmentLine(l, m, highlight))
	}
	return Text[S]{Lines: lines}, nil
}

// segmentLine does the span construction against an already-compiled
// matcher. The cursor resumes at each match end, so a match followed
// immediately by more text never drops a character.
func segmentLine[S any](line string, m *matcher, highlight S) Line[S] {
	var base S
	var spans []Span[S]
	last := 0
	for _, loc := range m.re.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		if start == end {
			// Zero-width match (e.g. pattern "a*" between characters).
			// Emitting it would add an empty span with no text to style.
			continue
		}
		if start > last {
			spans = append(spans, Span[S]{Text: line[last:start], Style: base})
		}
		spans = append(spans, Span[S]{Text: line[start:end], Style: highlight})
		last = end
	}
	if last < len(line) {
		spans = append(spans, Span[S]{Text: line[last:], Style: base})
	}
	return Line[S]{Spans: spans}
}
