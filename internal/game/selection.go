package game

// SelectionSet accumulates the resources picked for one transaction.
// Identifiers are unique within a set: upserting an already-selected
// resource replaces its count instead of adding a second entry. Order of
// first selection is preserved for display.
type SelectionSet struct {
	items []SelectedResource
}

// Upsert inserts the resource with the given selected count, or replaces the
// count of an existing entry with the same identifier.
func (s *SelectionSet) Upsert(r Resource, count int64) {
	for i := range s.items {
		if s.items[i].Identifier == r.Identifier {
			s.items[i].Resource = r
			s.items[i].SelectedCount = count
			return
		}
	}
	s.items = append(s.items, SelectedResource{Resource: r, SelectedCount: count})
}

// Remove drops the entry with the given identifier. Removing an identifier
// that was never selected is a no-op.
func (s *SelectionSet) Remove(id string) {
	for i := range s.items {
		if s.items[i].Identifier == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Get returns the selected entry for the identifier, if present.
func (s *SelectionSet) Get(id string) (SelectedResource, bool) {
	for _, it := range s.items {
		if it.Identifier == id {
			return it, true
		}
	}
	return SelectedResource{}, false
}

// Items returns the selections in first-selected order. The returned slice
// is shared; callers must not mutate it.
func (s *SelectionSet) Items() []SelectedResource {
	return s.items
}

// Len returns the number of selected resources.
func (s *SelectionSet) Len() int {
	return len(s.items)
}

// Clear empties the set.
func (s *SelectionSet) Clear() {
	s.items = nil
}

// Lots converts the selections to wire form for a finalize payload.
func (s *SelectionSet) Lots() []ResourceLot {
	lots := make([]ResourceLot, 0, len(s.items))
	for _, it := range s.items {
		lots = append(lots, ResourceLot{
			Identifier: it.Identifier,
			Name:       it.Name,
			Count:      it.SelectedCount,
		})
	}
	return lots
}
