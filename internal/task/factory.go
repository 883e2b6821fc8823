package task

// Factory creates tasks.
type Factory interface {
	CreateTask(title, description string) Item
}

// SimpleFactory creates plain tasks.
type SimpleFactory struct{}

// NewSimpleFactory returns the default factory.
func NewSimpleFactory() *SimpleFactory {
	return &SimpleFactory{}
}

// CreateTask implements Factory.
func (f *SimpleFactory) CreateTask(title, description string) Item {
	return New(title, description)
}
