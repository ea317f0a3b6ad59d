package markup

import "fmt"

// MalformedMarkupError reports source text that could not be turned into a
// tree at all. It is fatal to the whole load.
type MalformedMarkupError struct {
	Line int
	Err  error
}

func (e *MalformedMarkupError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed markup at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed markup: %v", e.Err)
}

func (e *MalformedMarkupError) Unwrap() error {
	return e.Err
}
