package chipdiff

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Registry stores the per-year datasets of a comparison session.
//
// In a Registry years are unique and always in ascending order. The registry
// is owned by the session that created it (one CLI invocation, one server
// process) and is never persisted.
type Registry struct {
	years    []int
	datasets map[int]*Dataset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		years:    make([]int, 0),
		datasets: make(map[int]*Dataset),
	}
}

// Len returns the number of years in the registry.
func (g *Registry) Len() int { return len(g.years) }

// Has reports whether the registry holds a dataset for this year.
func (g *Registry) Has(year int) bool {
	_, ok := g.datasets[year]
	return ok
}

// Upsert merges records into the dataset for 'year', creating the year if it
// was absent. Duplicate ids follow the dataset policy: the last write wins.
//
// The year must be a positive integer (fiscal years come from 4-digit file
// name tokens); anything else is a data-quality error. Invalid records are
// rejected the same way, and the valid remainder of the batch is still
// merged. It returns how many records overwrote an existing id, as an
// advisory for the caller.
func (g *Registry) Upsert(year int, records []Record) (overwritten int, err error) {
	if year <= 0 {
		return 0, fmt.Errorf("invalid year %d: must be a positive integer", year)
	}
	ds, ok := g.datasets[year]
	if !ok {
		ds = NewDataset()
		g.datasets[year] = ds
		g.years = append(g.years, year)
		slices.Sort(g.years)
	}
	for _, r := range records {
		if verr := r.Validate(); verr != nil {
			err = errors.Join(err, fmt.Errorf("year %d: %w", year, verr))
			continue
		}
		if ds.Append(r) {
			overwritten++
		}
	}
	return overwritten, err
}

// Get returns the dataset for 'year'. An absent year is semantically "no
// chipsets sold that year", so Get never fails and returns an empty dataset
// instead. The returned dataset is not attached to the registry when the year
// is absent.
func (g *Registry) Get(year int) *Dataset {
	if ds, ok := g.datasets[year]; ok {
		return ds
	}
	return NewDataset()
}

// Years returns an iterator over all years in the registry, ascending.
func (g *Registry) Years() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, y := range g.years {
			if !yield(y) {
				return
			}
		}
	}
}

// YearsBefore returns an iterator over the years strictly less than 'year',
// ascending. The classification engine uses it to walk the history of a
// target year.
func (g *Registry) YearsBefore(year int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, y := range g.years {
			if y >= year {
				return
			}
			if !yield(y) {
				return
			}
		}
	}
}

// Latest returns the most recent year in the registry, or 0 when empty.
func (g *Registry) Latest() int {
	if len(g.years) == 0 {
		return 0
	}
	return g.years[len(g.years)-1]
}
