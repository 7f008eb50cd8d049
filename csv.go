package chipdiff

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// this file handles the fiscal-year CSV export format.

// Column aliases recognized in the header row, all matched case-insensitively.
// Extra aliases can be added through the configuration file.
var (
	idAliases       = []string{"chipset sp", "chipset", "chipset id", "sp code"}
	customerAliases = []string{"customer", "customer details", "customer name"}
	pdmAliases      = []string{"pdm name", "pdm"}
)

// yearToken matches the trailing 4-digit year of a file name, e.g.
// "sales_2023.csv".
var yearToken = regexp.MustCompile(`(\d{4})$`)

// ParseStats reports the data-quality outcome of parsing one file. Skipped
// rows and duplicate ids are advisories, never parse failures.
type ParseStats struct {
	Rows       int // data rows read, excluding the header
	Skipped    int // rows dropped for an empty or missing chipset id
	Duplicates int // rows whose id repeated an earlier row of the same file
}

// YearFromFilename extracts the fiscal year from a file name. The name,
// without directory and extension, must end with a 4-digit year token; this
// token is the sole source of the year key for uploaded files.
func YearFromFilename(name string) (int, error) {
	base := name
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	m := yearToken.FindStringSubmatch(base)
	if m == nil {
		return 0, fmt.Errorf("file name %q has no trailing 4-digit year", name)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("file name %q has an invalid year token %q", name, m[1])
	}
	return year, nil
}

// columns locates the id, customer and pdm columns in a header row. Only the
// id column is mandatory: old exports did not always carry the metadata
// columns.
func columns(header []string, aliases ColumnAliases) (id, customer, pdm int, err error) {
	id, customer, pdm = -1, -1, -1
	match := func(name string, candidates []string) bool {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, c := range candidates {
			if name == c {
				return true
			}
		}
		return false
	}
	for i, name := range header {
		switch {
		case match(name, append(idAliases, aliases.ID...)):
			id = i
		case match(name, append(customerAliases, aliases.Customer...)):
			customer = i
		case match(name, append(pdmAliases, aliases.PDM...)):
			pdm = i
		}
	}
	if id < 0 {
		return 0, 0, 0, fmt.Errorf("no chipset id column found in header %q", strings.Join(header, ","))
	}
	return id, customer, pdm, nil
}

// ColumnAliases holds extra header names accepted for each record field, on
// top of the built-in ones.
type ColumnAliases struct {
	ID       []string
	Customer []string
	PDM      []string
}

// ParseCSV reads chipset records from one fiscal-year export.
//
// The first row is the header; columns are matched by name, not by position,
// so exports with reordered or extra columns (including the "Unnamed" and
// "S.No" index artifacts some tools add) parse fine. Rows without a chipset
// id are skipped and counted, the rest of the file proceeds.
func ParseCSV(r io.Reader, aliases ColumnAliases) ([]Record, ParseStats, error) {
	var stats ParseStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows happen in hand-edited exports

	header, err := cr.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("cannot read csv header: %w", err)
	}
	idCol, customerCol, pdmCol, err := columns(header, aliases)
	if err != nil {
		return nil, stats, err
	}

	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	seen := make(map[string]bool)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("cannot read csv row: %w", err)
		}
		stats.Rows++

		rec := NewRecord(field(row, idCol), field(row, customerCol), field(row, pdmCol))
		if rec.Validate() != nil {
			stats.Skipped++
			continue
		}
		if seen[rec.ID] {
			stats.Duplicates++
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	return records, stats, nil
}
