package chipdiff

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileReport describes what happened to one file of a batch load.
type FileReport struct {
	Path  string
	Year  int
	Stats ParseStats
	Err   error // nil when the file was ingested
}

// LoadFiles ingests the given CSV files into a fresh registry.
//
// A file whose name has no parseable year, or whose header has no chipset id
// column, is rejected alone: the rest of the batch still loads. The returned
// error joins the per-file rejections so the caller can both use the registry
// and report them.
func LoadFiles(paths []string, aliases ColumnAliases) (*Registry, []FileReport, error) {
	g := NewRegistry()
	reports := make([]FileReport, 0, len(paths))
	var errs error

	for _, path := range paths {
		report := FileReport{Path: path}

		year, err := YearFromFilename(path)
		if err != nil {
			report.Err = err
			errs = errors.Join(errs, err)
			reports = append(reports, report)
			continue
		}
		report.Year = year

		f, err := os.Open(path)
		if err != nil {
			report.Err = fmt.Errorf("cannot open %q: %w", path, err)
			errs = errors.Join(errs, report.Err)
			reports = append(reports, report)
			continue
		}
		records, stats, err := ParseCSV(f, aliases)
		f.Close()
		if err != nil {
			report.Err = fmt.Errorf("cannot parse %q: %w", path, err)
			errs = errors.Join(errs, report.Err)
			reports = append(reports, report)
			continue
		}
		report.Stats = stats

		overwritten, err := g.Upsert(year, records)
		if err != nil {
			// Records were validated at parse time, so this only fires on
			// invalid years, which YearFromFilename already excludes.
			errs = errors.Join(errs, err)
		}
		report.Stats.Duplicates += overwritten
		if report.Stats.Skipped > 0 {
			log.Printf("%s: skipped %d row(s) without a chipset id", path, report.Stats.Skipped)
		}
		reports = append(reports, report)
	}
	return g, reports, errs
}

// LoadDir ingests every .csv file found under 'dir' (recursively) into a
// fresh registry. Exports load first (in lexical order), then the manual
// entry files written by `chipdiff add` (manual_<year>.csv), so manual
// corrections win on duplicate ids under last-write-wins.
func LoadDir(dir string, aliases ColumnAliases) (*Registry, []FileReport, error) {
	var exports, manual []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".csv" {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), "manual_") {
			manual = append(manual, path)
		} else {
			exports = append(exports, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("cannot walk %q: %w", dir, err)
	}
	paths := append(exports, manual...)
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no .csv files found under %q", dir)
	}
	return LoadFiles(paths, aliases)
}

// ManualFile returns the path of the manual-entries file for a year under
// 'dir'. Manual entries are ordinary CSV rows appended to this file, so they
// flow through the same parsing and upsert path as uploaded exports.
func ManualFile(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("manual_%d.csv", year))
}

// AppendManual appends one manual record to the manual-entries file of this
// year, creating the file (with its header row) when absent.
func AppendManual(dir string, year int, r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if year <= 0 {
		return fmt.Errorf("invalid year %d: must be a positive integer", year)
	}

	path := ManualFile(dir, year)
	_, statErr := os.Stat(path)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open manual entries file %q: %w", path, err)
	}
	defer f.Close()

	if errors.Is(statErr, fs.ErrNotExist) {
		if _, err := fmt.Fprintf(f, "Chipset SP,Customer,PDM Name\n"); err != nil {
			return fmt.Errorf("cannot write header to %q: %w", path, err)
		}
	}
	if _, err := fmt.Fprintf(f, "%s,%s,%s\n", csvField(r.ID), csvField(r.Customer), csvField(r.PDM)); err != nil {
		return fmt.Errorf("cannot append to %q: %w", path, err)
	}
	return nil
}

// csvField quotes a field when it contains a separator, quote or newline.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
