// Package filelist is the ordered model behind the file table: each entry
// has a stable ID, so reordering and refreshing keep checks and previews
// attached to the right file.
package filelist

import "sort"

// Entry is one row of the file table.
type Entry struct {
	ID      int
	Name    string
	Checked bool
	Preview string
	Invalid bool
}

// List is an ordered sequence of entries. The zero value is empty and ready
// to use. It is not safe for concurrent use.
type List struct {
	entries []Entry
	nextID  int
}

// Reset replaces the contents with names, all unchecked.
func (l *List) Reset(names []string) {
	l.entries = l.entries[:0]
	for _, n := range names {
		l.entries = append(l.entries, l.newEntry(n))
	}
}

// Sync updates the list to contain exactly names. Entries that are still
// present keep their position, check state and ID; new names are appended
// in sorted order.
func (l *List) Sync(names []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	kept := l.entries[:0]
	have := make(map[string]bool, len(l.entries))
	for _, e := range l.entries {
		if want[e.Name] {
			e.Preview, e.Invalid = "", false
			kept = append(kept, e)
			have[e.Name] = true
		}
	}
	l.entries = kept

	var added []string
	for _, n := range names {
		if !have[n] {
			added = append(added, n)
		}
	}
	sort.Strings(added)
	for _, n := range added {
		l.entries = append(l.entries, l.newEntry(n))
	}
}

func (l *List) newEntry(name string) Entry {
	l.nextID++
	return Entry{ID: l.nextID, Name: name}
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// At returns the entry at row i.
func (l *List) At(i int) Entry {
	return l.entries[i]
}

// Index returns the row of the entry with id, or -1.
func (l *List) Index(id int) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Entries returns a copy of all entries in display order.
func (l *List) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Checked returns the checked entries in display order.
func (l *List) Checked() []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Checked {
			out = append(out, e)
		}
	}
	return out
}

// CheckedNames returns the names of the checked entries in display order.
func (l *List) CheckedNames() []string {
	var out []string
	for _, e := range l.entries {
		if e.Checked {
			out = append(out, e.Name)
		}
	}
	return out
}

// SetChecked sets the check state of the entry with id.
func (l *List) SetChecked(id int, checked bool) {
	if i := l.Index(id); i >= 0 {
		l.entries[i].Checked = checked
	}
}

// CheckAll sets the check state of every entry.
func (l *List) CheckAll(checked bool) {
	for i := range l.entries {
		l.entries[i].Checked = checked
	}
}

// Move takes the entry with id out of its row and inserts it at row to,
// shifting the rows in between. to is clamped to the list bounds.
func (l *List) Move(id, to int) bool {
	from := l.Index(id)
	if from < 0 {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to >= len(l.entries) {
		to = len(l.entries) - 1
	}
	if from == to {
		return false
	}
	e := l.entries[from]
	if from < to {
		copy(l.entries[from:to], l.entries[from+1:to+1])
	} else {
		copy(l.entries[to+1:from+1], l.entries[to:from])
	}
	l.entries[to] = e
	return true
}

// ClearPreview drops all previews and invalid marks.
func (l *List) ClearPreview() {
	for i := range l.entries {
		l.entries[i].Preview = ""
		l.entries[i].Invalid = false
	}
}

// SetPreview stores previews by entry ID and flags the entries in invalid.
// Entries missing from previews get an empty preview.
func (l *List) SetPreview(previews map[int]string, invalid map[int]bool) {
	for i := range l.entries {
		id := l.entries[i].ID
		l.entries[i].Preview = previews[id]
		l.entries[i].Invalid = invalid[id]
	}
}
