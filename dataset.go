package chipdiff

import (
	"iter"
	"slices"
	"strings"
)

// Dataset holds the chipset records observed in one fiscal year, keyed by
// chipset id. Ids are unique and the records are always sorted by id, so that
// iteration order, and therefore every rendering of the dataset, is
// deterministic.
type Dataset struct {
	records []Record
	index   map[string]int // chipset id to position in records
}

// NewDataset returns a new empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		records: make([]Record, 0),
		index:   make(map[string]int),
	}
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int { return len(d.records) }

// Has reports whether the dataset contains a record for this chipset id.
func (d *Dataset) Has(id string) bool {
	_, ok := d.index[id]
	return ok
}

// Get returns the record for this chipset id, and whether it exists.
func (d *Dataset) Get(id string) (Record, bool) {
	i, ok := d.index[id]
	if !ok {
		return Record{}, false
	}
	return d.records[i], true
}

// Append adds a record to the dataset.
//
// An existing record with the same id is overwritten: the last write wins,
// giving higher priority to the most recent upload or manual entry. It
// returns true when a record was overwritten.
func (d *Dataset) Append(r Record) (overwritten bool) {
	if i, ok := d.index[r.ID]; ok {
		d.records[i] = r
		return true
	}
	d.records = append(d.records, r)
	d.sort()
	return false
}

// sort keeps the records sorted by id and the index in sync.
func (d *Dataset) sort() {
	slices.SortFunc(d.records, func(a, b Record) int {
		return strings.Compare(a.ID, b.ID)
	})
	for i, r := range d.records {
		d.index[r.ID] = i
	}
}

// Records returns an iterator over all records in the dataset, in id order.
func (d *Dataset) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range d.records {
			if !yield(r) {
				return
			}
		}
	}
}

// IDs returns the set of chipset ids present in the dataset.
func (d *Dataset) IDs() map[string]bool {
	ids := make(map[string]bool, len(d.records))
	for _, r := range d.records {
		ids[r.ID] = true
	}
	return ids
}
