package chipdiff

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", name, err)
	}
	return path
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sales_2022.csv", "Chipset SP,Customer,PDM Name\nA,Acme,Lee\nB,Globex,Kim\n")
	writeFile(t, dir, "sales_2023.csv", "Chipset SP,Customer,PDM Name\nA,Acme,Lee\nC,Initech,Rao\n")
	writeFile(t, dir, "notes.txt", "not a csv")

	g, reports, err := LoadDir(dir, ColumnAliases{})
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d file reports, want 2", len(reports))
	}
	if got := slices.Collect(g.Years()); !slices.Equal(got, []int{2022, 2023}) {
		t.Errorf("Years() = %v, want [2022 2023]", got)
	}
	if !g.Get(2023).Has("C") {
		t.Errorf("2023 dataset is missing C")
	}
}

func TestLoadFilesRejectsBadNameAlone(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "sales_2022.csv", "Chipset SP,Customer,PDM Name\nA,Acme,Lee\n")
	bad := writeFile(t, dir, "sales.csv", "Chipset SP,Customer,PDM Name\nB,Globex,Kim\n")

	g, reports, err := LoadFiles([]string{good, bad}, ColumnAliases{})
	if err == nil {
		t.Errorf("LoadFiles() did not report the rejected file")
	}

	// The malformed name rejects that file only; the good one is ingested.
	if !g.Has(2022) || !g.Get(2022).Has("A") {
		t.Errorf("good file was not ingested")
	}
	for _, r := range reports {
		if r.Path == bad && r.Err == nil {
			t.Errorf("bad file has no error in its report")
		}
		if r.Path == good && r.Err != nil {
			t.Errorf("good file has error: %v", r.Err)
		}
	}
}

func TestLoadDirMergesManualEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sales_2023.csv", "Chipset SP,Customer,PDM Name\nA,Acme,Lee\n")
	writeFile(t, dir, "west_region_2023.csv", "Chipset SP,Customer,PDM Name\nA,Acme West,Lee\n")

	if err := AppendManual(dir, 2023, NewRecord("B", "Globex", "Kim")); err != nil {
		t.Fatalf("AppendManual() failed: %v", err)
	}
	// A second entry re-uses the existing file and overrides the upload.
	if err := AppendManual(dir, 2023, NewRecord("A", "Acme Corrected", "Lee")); err != nil {
		t.Fatalf("AppendManual() failed: %v", err)
	}

	g, _, err := LoadDir(dir, ColumnAliases{})
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	ds := g.Get(2023)
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
	// Manual files load after every export, so they win on duplicate ids
	// regardless of how the export names sort.
	r, _ := ds.Get("A")
	if r.Customer != "Acme Corrected" {
		t.Errorf("record A = %+v, want the manual correction", r)
	}
	if !ds.Has("B") {
		t.Errorf("manual record B missing")
	}
}

func TestAppendManualRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	if err := AppendManual(dir, 2023, NewRecord("", "Acme", "Lee")); err == nil {
		t.Errorf("AppendManual with empty id did not fail")
	}
	if err := AppendManual(dir, 0, NewRecord("A", "", "")); err == nil {
		t.Errorf("AppendManual with year 0 did not fail")
	}
}

func TestAppendManualQuotesFields(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecord("A", `Acme, "US" division`, "Lee")
	if err := AppendManual(dir, 2023, rec); err != nil {
		t.Fatalf("AppendManual() failed: %v", err)
	}

	g, _, err := LoadDir(dir, ColumnAliases{})
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	got, _ := g.Get(2023).Get("A")
	if got.Customer != rec.Customer {
		t.Errorf("Customer = %q, want %q round-tripped", got.Customer, rec.Customer)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	if _, _, err := LoadDir(t.TempDir(), ColumnAliases{}); err == nil {
		t.Errorf("LoadDir() on an empty dir did not fail")
	}
}
