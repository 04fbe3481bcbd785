// Package layout reconstructs plain text from recognized line geometry.
package layout

import (
	"fmt"
	"strings"

	"github.com/adrianliechti/docread/pkg/recognizer"
)

// breakThreshold is the vertical gap, in bounding-box coordinate units,
// above which two consecutive lines are rendered on separate text lines.
// It is a fixed heuristic and deliberately not adaptive to page size.
const breakThreshold = 0.2

// pageSeparator joins page texts in a document (two blank lines).
const pageSeparator = "\n\n\n"

// PageText renders a page's lines into a single text block. Lines whose top
// coordinate moves down by breakThreshold or more start a new text line;
// lines on the same visual row are joined with a single space. Line text is
// appended verbatim. The input order is preserved.
func PageText(lines []recognizer.Line) string {
	var builder strings.Builder
	var lastTop float64

	for i, line := range lines {
		if i > 0 && line.Top()-lastTop >= breakThreshold {
			builder.WriteString("\n")
		} else if builder.Len() > 0 {
			builder.WriteString(" ")
		}

		builder.WriteString(line.Text)

		lastTop = line.Top()
	}

	return builder.String()
}

// DocumentText joins the page texts in the given page order.
//
// Pages are not re-sorted by page number. The engine returns results in page
// order, and reordering here would mask an engine regression.
func DocumentText(pages []recognizer.Page) string {
	var builder strings.Builder

	for i, page := range pages {
		if i > 0 {
			builder.WriteString(pageSeparator)
		}

		builder.WriteString(PageText(page.Lines))
	}

	return builder.String()
}

type File struct {
	Name string
	Text string
}

// Files renders one output file per page, named by the zero-padded page
// number, plus a "full" file holding the joined document text.
func Files(document *recognizer.Document) []File {
	var files []File

	for _, page := range document.Pages {
		files = append(files, File{
			Name: fmt.Sprintf("%03d.txt", page.Number),
			Text: PageText(page.Lines),
		})
	}

	files = append(files, File{
		Name: "full.txt",
		Text: DocumentText(document.Pages),
	})

	return files
}
