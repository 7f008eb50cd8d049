package renderer

import (
	"strings"
	"testing"

	"github.com/sgopal/chipdiff"
)

func registry(t *testing.T) *chipdiff.Registry {
	t.Helper()
	g := chipdiff.NewRegistry()
	g.Upsert(2022, []chipdiff.Record{
		chipdiff.NewRecord("SP100", "Acme", "Lee"),
		chipdiff.NewRecord("SP200", "Globex", "Kim"),
	})
	g.Upsert(2023, []chipdiff.Record{
		chipdiff.NewRecord("SP100", "Acme", "Lee"),
		chipdiff.NewRecord("SP300", "Initech", "Rao"),
	})
	return g
}

func TestClassificationMarkdown(t *testing.T) {
	g := registry(t)
	c := chipdiff.Classify(g, 2023)
	got := ClassificationMarkdown(c)

	for _, want := range []string{
		"# Chipset Changes for 2023",
		"## Added Chipsets",
		"## Removed Chipsets",
		"## Reappeared Chipsets",
		"SP300",   // added
		"SP200",   // removed
		"Globex",  // removed record keeps its 2022 metadata
		"Sr. No",  // serial number column
		"None.",   // the empty reappeared section
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}
	// Steady-state SP100 is reported nowhere.
	if n := strings.Count(got, "SP100"); n != 0 {
		t.Errorf("steady-state id SP100 appears %d time(s) in the report:\n%s", n, got)
	}
}

func TestRegistryMarkdown(t *testing.T) {
	got := RegistryMarkdown(registry(t))

	for _, want := range []string{
		"# Data Preview",
		"## 2022 Data",
		"## 2023 Data",
		"SP100",
		"SP300",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("preview is missing %q:\n%s", want, got)
		}
	}
}

func TestPreviewMarkdownEmptyYear(t *testing.T) {
	got := PreviewMarkdown(2024, chipdiff.NewDataset())
	if !strings.Contains(got, "No records for this year.") {
		t.Errorf("empty preview = %q, want the no-records notice", got)
	}
}

func TestYearsMarkdown(t *testing.T) {
	got := YearsMarkdown(registry(t))
	for _, want := range []string{"# Loaded Years", "2022", "2023"} {
		if !strings.Contains(got, want) {
			t.Errorf("years table is missing %q:\n%s", want, got)
		}
	}
}
