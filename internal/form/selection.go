package form

import "tinta/internal/domain"

// Selection tracks which generated colors are selected. Items keep their
// original order; selection is keyed by ColorItem.ID.
type Selection struct {
	items    []domain.ColorItem
	selected map[string]bool
}

// NewSelection creates an empty selection over items
func NewSelection(items []domain.ColorItem) *Selection {
	return &Selection{
		items:    items,
		selected: make(map[string]bool),
	}
}

// Items returns all items
func (s *Selection) Items() []domain.ColorItem {
	return s.items
}

// Toggle flips the selection of item
func (s *Selection) Toggle(item domain.ColorItem) {
	if s.selected[item.ID] {
		delete(s.selected, item.ID)
		return
	}
	s.selected[item.ID] = true
}

// SelectAll selects every item
func (s *Selection) SelectAll() {
	for _, item := range s.items {
		s.selected[item.ID] = true
	}
}

// Clear deselects everything
func (s *Selection) Clear() {
	s.selected = make(map[string]bool)
}

// IsSelected reports whether item is selected
func (s *Selection) IsSelected(item domain.ColorItem) bool {
	return s.selected[item.ID]
}

// Count returns the number of selected items
func (s *Selection) Count() int {
	return len(s.selected)
}

// AnySelected reports whether at least one item is selected
func (s *Selection) AnySelected() bool {
	return len(s.selected) > 0
}

// AllSelected reports whether every item is selected
func (s *Selection) AllSelected() bool {
	return len(s.items) > 0 && len(s.selected) == len(s.items)
}

// Selected returns the selected items in display order
func (s *Selection) Selected() []domain.ColorItem {
	out := make([]domain.ColorItem, 0, len(s.selected))
	for _, item := range s.items {
		if s.selected[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

// LaunchContext builds the hand-off payload for the save form
func (s *Selection) LaunchContext(text domain.AIGeneratedText) domain.LaunchContext {
	return domain.LaunchContext{
		AIText:         &text,
		SelectedColors: s.Selected(),
	}
}
