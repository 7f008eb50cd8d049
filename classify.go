package chipdiff

// Classification is the result of comparing a target year against the
// registry history.
//
// The three slices are pairwise disjoint on chipset id and sorted by id.
// Added and Reappeared carry the records of the target year's dataset;
// Removed carries the records of the immediate predecessor year, since by
// definition they are absent from the target year.
type Classification struct {
	Year       int      `json:"year"`
	Added      []Record `json:"added"`
	Removed    []Record `json:"removed"`
	Reappeared []Record `json:"reappeared"`
}

// Classify computes the classification of 'target' against the registry.
//
// It is a pure function of the registry snapshot and the target year:
//   - Added: ids present in the target year and never seen in any earlier
//     year.
//   - Removed: ids present in the immediate predecessor year but absent from
//     the target year. Ids that vanished two or more years earlier are not
//     reported again; their absence is already old news.
//   - Reappeared: ids present in the target year and in some earlier year,
//     but absent from the immediate predecessor.
//
// A target year absent from the registry, or an empty registry, yields empty
// sets: there is nothing to compare. For the earliest year of the registry,
// every target id is Added.
func Classify(g *Registry, target int) *Classification {
	c := &Classification{
		Year:       target,
		Added:      []Record{},
		Removed:    []Record{},
		Reappeared: []Record{},
	}

	// A year never registered has nothing to compare against: per the error
	// policy this is the all-empty result, not a diff against an empty roster.
	if !g.Has(target) {
		return c
	}

	targetSet := g.Get(target)

	// Union of all ids strictly before the target, and the immediate
	// predecessor dataset (the last year of that walk).
	history := make(map[string]bool)
	var prev *Dataset
	for y := range g.YearsBefore(target) {
		prev = g.Get(y)
		for id := range prev.IDs() {
			history[id] = true
		}
	}
	if prev == nil {
		prev = NewDataset()
	}

	for r := range targetSet.Records() {
		switch {
		case !history[r.ID]:
			c.Added = append(c.Added, r)
		case !prev.Has(r.ID):
			c.Reappeared = append(c.Reappeared, r)
		}
		// Present in the predecessor too: steady state, not reported.
	}

	for r := range prev.Records() {
		if !targetSet.Has(r.ID) {
			c.Removed = append(c.Removed, r)
		}
	}

	return c
}
