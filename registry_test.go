package chipdiff

import (
	"slices"
	"testing"
)

func TestRegistryUpsert(t *testing.T) {
	g := NewRegistry()

	if _, err := g.Upsert(2023, []Record{NewRecord("A", "", "")}); err != nil {
		t.Fatalf("Upsert(2023) failed: %v", err)
	}
	if _, err := g.Upsert(2021, []Record{NewRecord("B", "", "")}); err != nil {
		t.Fatalf("Upsert(2021) failed: %v", err)
	}

	// Years come back sorted regardless of insertion order.
	got := slices.Collect(g.Years())
	if !slices.Equal(got, []int{2021, 2023}) {
		t.Errorf("Years() = %v, want [2021 2023]", got)
	}
}

func TestRegistryUpsertMergesSameYear(t *testing.T) {
	g := NewRegistry()
	g.Upsert(2023, []Record{NewRecord("A", "Acme", "")})

	overwritten, err := g.Upsert(2023, []Record{
		NewRecord("A", "Globex", ""), // same id, re-uploaded
		NewRecord("B", "", ""),
	})
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if overwritten != 1 {
		t.Errorf("overwritten = %d, want 1", overwritten)
	}

	// The year appears once; the duplicate id follows last-write-wins.
	if got := slices.Collect(g.Years()); !slices.Equal(got, []int{2023}) {
		t.Errorf("Years() = %v, want [2023]", got)
	}
	r, _ := g.Get(2023).Get("A")
	if r.Customer != "Globex" {
		t.Errorf("record A = %+v, want the re-uploaded one", r)
	}
	if g.Get(2023).Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Get(2023).Len())
	}
}

func TestRegistryUpsertRejectsBadInput(t *testing.T) {
	g := NewRegistry()

	if _, err := g.Upsert(0, nil); err == nil {
		t.Errorf("Upsert(0) did not fail")
	}
	if _, err := g.Upsert(-2023, nil); err == nil {
		t.Errorf("Upsert(-2023) did not fail")
	}

	// An invalid record is reported but does not abort the valid remainder.
	_, err := g.Upsert(2023, []Record{NewRecord("", "no id", ""), NewRecord("A", "", "")})
	if err == nil {
		t.Errorf("Upsert with an empty id did not report it")
	}
	if !g.Get(2023).Has("A") {
		t.Errorf("valid record was dropped along with the invalid one")
	}
}

func TestRegistryGetAbsentYear(t *testing.T) {
	g := NewRegistry()
	g.Upsert(2023, []Record{NewRecord("A", "", "")})

	// An absent year is an empty roster, never a failure.
	ds := g.Get(1999)
	if ds == nil || ds.Len() != 0 {
		t.Errorf("Get(1999) = %v, want an empty dataset", ds)
	}
}

func TestRegistryYearsBefore(t *testing.T) {
	g := NewRegistry()
	for _, y := range []int{2024, 2020, 2022} {
		g.Upsert(y, nil)
	}

	tests := []struct {
		year int
		want []int
	}{
		{2025, []int{2020, 2022, 2024}},
		{2024, []int{2020, 2022}},
		{2022, []int{2020}},
		{2020, nil},
		{1990, nil},
	}
	for _, tt := range tests {
		got := slices.Collect(g.YearsBefore(tt.year))
		if !slices.Equal(got, tt.want) {
			t.Errorf("YearsBefore(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}

	// The sequence is restartable: a second walk yields the same years.
	seq := g.YearsBefore(2024)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second walk = %v, want %v", second, first)
	}
}

func TestRegistryLatest(t *testing.T) {
	g := NewRegistry()
	if g.Latest() != 0 {
		t.Errorf("Latest() on empty registry = %d, want 0", g.Latest())
	}
	g.Upsert(2021, nil)
	g.Upsert(2023, nil)
	if g.Latest() != 2023 {
		t.Errorf("Latest() = %d, want 2023", g.Latest())
	}
}
