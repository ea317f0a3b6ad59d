package builder

import "fmt"

// NoWindowElementError is returned when a fragment's root is missing or is
// not a <window> element.
type NoWindowElementError struct {
	// Tag is the root's tag, empty when there was no root element.
	Tag string
}

func (e *NoWindowElementError) Error() string {
	if e.Tag == "" {
		return "fragment has no window element"
	}
	return fmt.Sprintf("fragment root is <%s>, want <window>", e.Tag)
}

// DepthError is returned when elements nest deeper than MaxDepth.
type DepthError struct {
	Line  int
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("line %d: elements nested deeper than %d levels", e.Line, e.Limit)
}

// ElementError attaches the source position of the failing element to a
// resolve failure. Callers match the cause with errors.As.
type ElementError struct {
	Tag  string
	Line int
	Err  error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("<%s> at line %d: %v", e.Tag, e.Line, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
