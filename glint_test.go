package glint_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/glint"
)

// Tests instantiate the engine with string styles: "" is the base style and
// hl marks highlighted spans.
const hl = "hl"

func spans(pairs ...[2]string) []glint.Span[string] {
	out := make([]glint.Span[string], 0, len(pairs))
	for _, p := range pairs {
		out = append(out, glint.Span[string]{Text: p[0], Style: p[1]})
	}
	return out
}

func TestSegmentLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		pattern string
		want    []glint.Span[string]
	}{
		{
			name:    "match in the middle",
			line:    "Hi @buddy",
			pattern: `@\w+`,
			want:    spans([2]string{"Hi ", ""}, [2]string{"@buddy", hl}),
		},
		{
			name:    "no matches returns whole line unstyled",
			line:    "no mentions here",
			pattern: `@\w+`,
			want:    spans([2]string{"no mentions here", ""}),
		},
		{
			name:    "match at line start",
			line:    "@stranger hello",
			pattern: `@\w+`,
			want:    spans([2]string{"@stranger", hl}, [2]string{" hello", ""}),
		},
		{
			name:    "match at line end keeps trailing text intact",
			line:    "ping @a!",
			pattern: `@\w+`,
			want:    spans([2]string{"ping ", ""}, [2]string{"@a", hl}, [2]string{"!", ""}),
		},
		{
			name:    "adjacent matches emit no separator",
			line:    "@a@b",
			pattern: `@\w`,
			want:    spans([2]string{"@a", hl}, [2]string{"@b", hl}),
		},
		{
			name:    "whole line is one match",
			line:    "@everyone",
			pattern: `@\w+`,
			want:    spans([2]string{"@everyone", hl}),
		},
		{
			name:    "empty line yields no spans",
			line:    "",
			pattern: `@\w+`,
			want:    nil,
		},
		{
			name:    "multiple matches with gaps",
			line:    "Hello @Henry. Why are you named @nobody",
			pattern: `@\w+`,
			want: spans(
				[2]string{"Hello ", ""},
				[2]string{"@Henry", hl},
				[2]string{". Why are you named ", ""},
				[2]string{"@nobody", hl},
			),
		},
		{
			name:    "multibyte text around a match",
			line:    "héllo ää wörld",
			pattern: `ä+`,
			want:    spans([2]string{"héllo ", ""}, [2]string{"ää", hl}, [2]string{" wörld", ""}),
		},
		{
			name:    "zero-width matches are skipped",
			line:    "abc",
			pattern: `x*`,
			want:    spans([2]string{"abc", ""}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := glint.SegmentLine(tt.line, glint.NewPattern(tt.pattern), hl)
			require.NoError(t, err)
			require.Equal(t, tt.want, line.Spans)
			require.Equal(t, tt.line, line.String(), "spans must reconstruct the input")
		})
	}
}

func TestSegmentText(t *testing.T) {
	text, err := glint.SegmentText("Hi @buddy\n@stranger hello", glint.NewPattern(`@\w+`), hl)
	require.NoError(t, err)
	require.Len(t, text.Lines, 2)
	require.Equal(t, spans([2]string{"Hi ", ""}, [2]string{"@buddy", hl}), text.Lines[0].Spans)
	require.Equal(t, spans([2]string{"@stranger", hl}, [2]string{" hello", ""}), text.Lines[1].Spans)
}

func TestSegmentText_LineCount(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single line", "one"},
		{"trailing newline", "one\n"},
		{"consecutive newlines", "one\n\ntwo"},
		{"only newlines", "\n\n\n"},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := glint.SegmentText(tt.text, glint.NewPattern(`@\w+`), hl)
			require.NoError(t, err)
			require.Len(t, text.Lines, strings.Count(tt.text, "\n")+1)
			require.Equal(t, tt.text, text.String(), "lines must reconstruct the input")
		})
	}
}

func TestSegmentText_EmptyInteriorLinesSurvive(t *testing.T) {
	text, err := glint.SegmentText("@a\n\n@b\n", glint.NewPattern(`@\w`), hl)
	require.NoError(t, err)
	require.Len(t, text.Lines, 4)
	require.Empty(t, text.Lines[1].Spans)
	require.Empty(t, text.Lines[3].Spans)
}

func TestInvalidPattern(t *testing.T) {
	bad := glint.NewPattern(`[unclosed`)

	_, err := glint.SegmentLine("some text", bad, hl)
	var perr *glint.InvalidPatternError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, `[unclosed`, perr.Expr)
	require.NotNil(t, perr.Unwrap())

	_, err = glint.SegmentText("some\ntext", bad, hl)
	require.ErrorAs(t, err, &perr)
	require.Contains(t, err.Error(), "invalid pattern")
}

func TestPrecompiledPatternReuse(t *testing.T) {
	re := regexp.MustCompile(`@\w+`)
	compiled := glint.Precompiled(re)

	first, err := glint.SegmentLine("Hi @buddy", compiled, hl)
	require.NoError(t, err)
	second, err := glint.SegmentLine("Hi @buddy", compiled, hl)
	require.NoError(t, err)
	fresh, err := glint.SegmentLine("Hi @buddy", glint.NewPattern(`@\w+`), hl)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, first, fresh)
}

func TestSegmentLine_ErrorIsNotSilentEmpty(t *testing.T) {
	line, err := glint.SegmentLine("text", glint.NewPattern(`(`), hl)
	require.Error(t, err)
	require.Empty(t, line.Spans)
}
