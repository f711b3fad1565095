// Package inventory holds the avatar's items and selection.
package inventory

// Inventory is an ordered collection of item names with at most one
// selected item. The interaction resolver reads selection and membership
// and requests add/remove as interaction side effects.
type Inventory struct {
	items    []string
	selected int // index into items, -1 = nothing selected
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{selected: -1}
}

// Has reports whether the named item is held.
func (inv *Inventory) Has(name string) bool {
	return inv.indexOf(name) >= 0
}

// Add appends an item unless it is already held.
func (inv *Inventory) Add(name string) {
	if name == "" || inv.Has(name) {
		return
	}
	inv.items = append(inv.items, name)
}

// Remove drops the named item. If it was selected, the selection is
// cleared.
func (inv *Inventory) Remove(name string) {
	i := inv.indexOf(name)
	if i < 0 {
		return
	}
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	switch {
	case inv.selected == i:
		inv.selected = -1
	case inv.selected > i:
		inv.selected--
	}
}

// Select marks the named item as selected. Selecting an item that is not
// held clears the selection.
func (inv *Inventory) Select(name string) {
	inv.selected = inv.indexOf(name)
}

// Selected returns the selected item name, if any.
func (inv *Inventory) Selected() (string, bool) {
	if inv.selected < 0 {
		return "", false
	}
	return inv.items[inv.selected], true
}

// ClearSelection deselects any selected item.
func (inv *Inventory) ClearSelection() {
	inv.selected = -1
}

// Items returns the held items in acquisition order.
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

func (inv *Inventory) indexOf(name string) int {
	for i, item := range inv.items {
		if item == name {
			return i
		}
	}
	return -1
}
