package layout_test

import (
	"strings"
	"testing"

	"github.com/adrianliechti/docread/pkg/layout"
	"github.com/adrianliechti/docread/pkg/recognizer"

	"github.com/stretchr/testify/require"
)

func line(top float64, text string) recognizer.Line {
	return recognizer.Line{
		Text:        text,
		BoundingBox: []float64{0.1, top, 0.9, 0.05},
	}
}

func TestPageText(t *testing.T) {
	tests := []struct {
		name  string
		lines []recognizer.Line
		want  string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "single line",
			lines: []recognizer.Line{line(0.10, "Hello")},
			want:  "Hello",
		},
		{
			name: "same row joined with spaces",
			lines: []recognizer.Line{
				line(0.10, "Hello"),
				line(0.12, "World"),
				line(0.25, "Again"),
			},
			want: "Hello World Again",
		},
		{
			name: "vertical gap starts new line",
			lines: []recognizer.Line{
				line(0.10, "Hello"),
				line(0.12, "World"),
				line(0.45, "New"),
				line(0.46, "Para"),
			},
			want: "Hello World\nNew Para",
		},
		{
			// 0.45 - 0.25 stores as slightly above 0.2; a pair like
			// 0.10/0.30 stores as slightly below and must not break
			name: "gap exactly at threshold breaks",
			lines: []recognizer.Line{
				line(0.25, "a"),
				line(0.45, "b"),
			},
			want: "a\nb",
		},
		{
			name: "threshold with exact coordinates breaks",
			lines: []recognizer.Line{
				line(0.0, "a"),
				line(0.2, "b"),
			},
			want: "a\nb",
		},
		{
			name: "delta rounding below threshold does not break",
			lines: []recognizer.Line{
				line(0.10, "a"),
				line(0.30, "b"),
			},
			want: "a b",
		},
		{
			name: "gap just below threshold does not break",
			lines: []recognizer.Line{
				line(0.10, "a"),
				line(0.29, "b"),
			},
			want: "a b",
		},
		{
			name: "text kept verbatim",
			lines: []recognizer.Line{
				line(0.10, "  Mixed Case  "),
				line(0.11, ""),
			},
			want: "  Mixed Case   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, layout.PageText(tt.lines))
		})
	}
}

func TestPageTextNoBreakBelowThreshold(t *testing.T) {
	lines := []recognizer.Line{
		line(0.10, "one"),
		line(0.28, "two"),
		line(0.47, "three"),
		line(0.61, "four"),
	}

	text := layout.PageText(lines)

	require.NotContains(t, text, "\n")
	require.Equal(t, "one two three four", text)
}

func TestDocumentText(t *testing.T) {
	pages := []recognizer.Page{
		{Number: 1, Lines: []recognizer.Line{line(0.1, "first")}},
		{Number: 2, Lines: []recognizer.Line{line(0.1, "second")}},
		{Number: 3, Lines: []recognizer.Line{line(0.1, "third")}},
	}

	text := layout.DocumentText(pages)

	require.Equal(t, "first\n\n\nsecond\n\n\nthird", text)
	require.Equal(t, 2, strings.Count(text, "\n\n\n"))
}

func TestDocumentTextPreservesOrder(t *testing.T) {
	pages := []recognizer.Page{
		{Number: 2, Lines: []recognizer.Line{line(0.1, "second")}},
		{Number: 1, Lines: []recognizer.Line{line(0.1, "first")}},
	}

	require.Equal(t, "second\n\n\nfirst", layout.DocumentText(pages))
}

func TestFiles(t *testing.T) {
	document := &recognizer.Document{
		Pages: []recognizer.Page{
			{Number: 1, Lines: []recognizer.Line{line(0.1, "first")}},
			{Number: 2, Lines: []recognizer.Line{line(0.1, "second")}},
		},
	}

	files := layout.Files(document)

	require.Len(t, files, 3)

	require.Equal(t, "001.txt", files[0].Name)
	require.Equal(t, "first", files[0].Text)

	require.Equal(t, "002.txt", files[1].Name)
	require.Equal(t, "second", files[1].Text)

	require.Equal(t, "full.txt", files[2].Name)
	require.Equal(t, "first\n\n\nsecond", files[2].Text)
}
