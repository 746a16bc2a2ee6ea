package index

// AddEntry appends an entry without comments. Duplicates are not checked,
// use EntryExists first.
func (d *Document) AddEntry(name string, enabled bool) {
	d.Entries = append(d.Entries, Reference{Name: name, Enabled: enabled})
}

// EntryExists reports whether an entry has exactly this name
func (d *Document) EntryExists(name string) bool {
	return d.Position(name) >= 0
}

// Position returns the index of the first entry with this name, or -1
func (d *Document) Position(name string) int {
	for i, ref := range d.Entries {
		if ref.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the first entry with this name
func (d *Document) Lookup(name string) (*Reference, bool) {
	i := d.Position(name)
	if i < 0 {
		return nil, false
	}
	return &d.Entries[i], true
}

// MoveEntry moves the entry at from so it ends up at to. Requests with
// either index outside [0, len) are ignored.
func (d *Document) MoveEntry(from, to int) {
	n := len(d.Entries)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	ref := d.Entries[from]
	if from < to {
		copy(d.Entries[from:to], d.Entries[from+1:to+1])
	} else {
		copy(d.Entries[to+1:from+1], d.Entries[to:from])
	}
	d.Entries[to] = ref
}

// RemoveEntry drops the first entry with this name. Its comments move to
// the following entry, or to the footer when it was the last one.
func (d *Document) RemoveEntry(name string) bool {
	i := d.Position(name)
	if i < 0 {
		return false
	}
	comments := d.Entries[i].Comments
	d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)

	if len(comments) > 0 {
		if i < len(d.Entries) {
			next := &d.Entries[i]
			next.Comments = append(append([]string(nil), comments...), next.Comments...)
		} else {
			d.Footer = joinLines(comments) + d.Footer
		}
	}
	return true
}

// SetEnabled sets the enabled flag of the named entry
func (d *Document) SetEnabled(name string, enabled bool) bool {
	ref, ok := d.Lookup(name)
	if !ok {
		return false
	}
	ref.Enabled = enabled
	return true
}

// Toggle flips the enabled flag of the named entry and returns the new state
func (d *Document) Toggle(name string) (enabled bool, ok bool) {
	ref, ok := d.Lookup(name)
	if !ok {
		return false, false
	}
	ref.Enabled = !ref.Enabled
	return ref.Enabled, true
}

// EnabledNames returns the names of enabled entries in document order
func (d *Document) EnabledNames() []string {
	names := make([]string, 0, len(d.Entries))
	for _, ref := range d.Entries {
		if ref.Enabled {
			names = append(names, ref.Name)
		}
	}
	return names
}

// QuickNames returns at most n enabled names, in document order
func (d *Document) QuickNames(n int) []string {
	names := d.EnabledNames()
	if n < 0 {
		n = 0
	}
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// IsQuick reports whether entry i is enabled and fewer than n enabled
// entries come before it
func (d *Document) IsQuick(i, n int) bool {
	if i < 0 || i >= len(d.Entries) || !d.Entries[i].Enabled {
		return false
	}
	before := 0
	for _, ref := range d.Entries[:i] {
		if ref.Enabled {
			before++
		}
	}
	return before < n
}
