// Package renderer turns the library's report structs into markdown, ready
// for terminal display or publication. All tables carry a leading serial
// number column ("Sr. No") starting at 1, the way the analysts' original
// spreadsheets did.
package renderer

import (
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/sgopal/chipdiff"
)

// recordHeader is the shared column layout of every record table.
var recordHeader = []string{"Sr. No", "Chipset SP", "Customer", "PDM Name"}

var recordAlignment = []md.TableAlignment{
	md.AlignRight,
	md.AlignLeft,
	md.AlignLeft,
	md.AlignLeft,
}

// recordTable builds the standard record table with serial numbers.
func recordTable(records []chipdiff.Record) md.TableSet {
	table := md.TableSet{
		Alignment: recordAlignment,
		Header:    recordHeader,
		Rows:      [][]string{},
	}
	for i, r := range records {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			r.ID,
			r.Customer,
			r.PDM,
		})
	}
	return table
}

// collect drains a dataset into a slice for table rendering.
func collect(ds *chipdiff.Dataset) []chipdiff.Record {
	records := make([]chipdiff.Record, 0, ds.Len())
	for r := range ds.Records() {
		records = append(records, r)
	}
	return records
}
