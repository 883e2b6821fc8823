package task

// List is an ordered collection of items.
// Insertion order is preserved and duplicates are allowed.
// It is shared by pointer between its owner and the commands that fill it.
type List struct {
	items []Item
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Append adds an item at the end of the list.
func (l *List) Append(it Item) {
	l.items = append(l.items, it)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the items in insertion order.
// The returned slice is a copy; the items themselves are shared.
func (l *List) Items() []Item {
	result := make([]Item, len(l.items))
	copy(result, l.items)
	return result
}
