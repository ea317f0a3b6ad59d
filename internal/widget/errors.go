package widget

import "fmt"

// UnknownKindError is returned for a tag with no registered widget kind.
type UnknownKindError struct {
	Tag string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown widget kind %q", e.Tag)
}

// NotAContainerError is returned when a leaf widget is given children.
type NotAContainerError struct {
	Kind Kind
}

func (e *NotAContainerError) Error() string {
	return fmt.Sprintf("%s cannot contain child widgets", e.Kind)
}
