package task

// UrgentPrefix is prepended to the rendering of urgent tasks.
const UrgentPrefix = "[URGENTE] "

// Decorator wraps an Item and forwards every operation to it.
// Concrete decorators embed it and override Render.
type Decorator struct {
	inner Item
}

// NewDecorator wraps inner without touching its state.
func NewDecorator(inner Item) Decorator {
	return Decorator{inner: inner}
}

// Unwrap returns the wrapped item.
func (d Decorator) Unwrap() Item {
	return d.inner
}

// Render returns the wrapped item's rendering unchanged.
func (d Decorator) Render() string {
	return d.inner.Render()
}

// MarkComplete forwards to the wrapped item.
func (d Decorator) MarkComplete() {
	d.inner.MarkComplete()
}

// IsCompleted forwards to the wrapped item.
func (d Decorator) IsCompleted() bool {
	return d.inner.IsCompleted()
}

// Title forwards to the wrapped item.
func (d Decorator) Title() string {
	return d.inner.Title()
}

// Urgent flags the wrapped item as urgent when rendered.
type Urgent struct {
	Decorator
}

// NewUrgent wraps inner in an urgent decorator.
func NewUrgent(inner Item) *Urgent {
	return &Urgent{Decorator: NewDecorator(inner)}
}

// Render implements Item.
// Format: "[URGENTE] {INNER RENDER}"
func (u *Urgent) Render() string {
	return UrgentPrefix + u.Decorator.Render()
}

func (u *Urgent) String() string {
	return u.Render()
}
