package naming

// DuplicateGroup is a destination claimed by more than one source. Sources
// keep the order in which they appeared in the batch.
type DuplicateGroup struct {
	Destination string
	Sources     []string
}

// Duplicates lists colliding destinations ordered by their first
// appearance in the batch.
type Duplicates []DuplicateGroup

// FindDuplicates groups results by destination and returns the groups with
// more than one member. The result is empty when every destination is
// distinct.
func FindDuplicates(results []Result) Duplicates {
	order := make([]string, 0, len(results))
	groups := make(map[string][]string, len(results))
	for _, r := range results {
		if _, seen := groups[r.Destination]; !seen {
			order = append(order, r.Destination)
		}
		groups[r.Destination] = append(groups[r.Destination], r.Source)
	}

	var dups Duplicates
	for _, dest := range order {
		if srcs := groups[dest]; len(srcs) > 1 {
			dups = append(dups, DuplicateGroup{Destination: dest, Sources: srcs})
		}
	}
	return dups
}

// Sources returns the set of source names involved in any collision.
func (d Duplicates) Sources() map[string]bool {
	out := make(map[string]bool)
	for _, g := range d {
		for _, s := range g.Sources {
			out[s] = true
		}
	}
	return out
}
