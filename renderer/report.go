package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sgopal/chipdiff"
)

// ClassificationMarkdown renders the Added / Removed / Reappeared report for
// a target year.
func ClassificationMarkdown(c *chipdiff.Classification) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Chipset Changes for %d", c.Year))

	section(doc, "Added Chipsets", "Chipsets appearing for the first time this year.", c.Added)
	section(doc, "Removed Chipsets", "Chipsets sold the year before but not this year.", c.Removed)
	section(doc, "Reappeared Chipsets", "Chipsets back after skipping the previous year.", c.Reappeared)

	return doc.String()
}

func section(doc *md.Markdown, title, caption string, records []chipdiff.Record) {
	doc.H2(title)
	if len(records) == 0 {
		doc.PlainText("None.")
		return
	}
	doc.PlainText(caption)
	doc.Table(recordTable(records))
}
