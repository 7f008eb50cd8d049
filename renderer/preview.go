package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sgopal/chipdiff"
)

// PreviewMarkdown renders the raw dataset of one year as a markdown table.
func PreviewMarkdown(year int, ds *chipdiff.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("%d Data", year))
	if ds.Len() == 0 {
		doc.PlainText("No records for this year.")
		return doc.String()
	}
	doc.Table(recordTable(collect(ds)))
	return doc.String()
}

// RegistryMarkdown renders the data preview of every year in the registry,
// ascending.
func RegistryMarkdown(g *chipdiff.Registry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Data Preview")
	if g.Len() == 0 {
		doc.PlainText("The registry is empty: no files were loaded.")
		return doc.String()
	}
	for year := range g.Years() {
		doc.H2(fmt.Sprintf("%d Data", year))
		ds := g.Get(year)
		if ds.Len() == 0 {
			doc.PlainText("No records for this year.")
			continue
		}
		doc.Table(recordTable(collect(ds)))
	}
	return doc.String()
}

// YearsMarkdown renders the list of loaded years with their record counts.
func YearsMarkdown(g *chipdiff.Registry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loaded Years")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Chipsets"},
		Rows:      [][]string{},
	}
	for year := range g.Years() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", year),
			fmt.Sprintf("%d", g.Get(year).Len()),
		})
	}
	doc.Table(table)
	return doc.String()
}
