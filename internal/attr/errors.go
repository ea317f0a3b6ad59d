package attr

import "fmt"

// CoercionError reports an attribute value that could not be converted to
// its target type. It is never downgraded to the field's default.
type CoercionError struct {
	Kind      string
	Attribute string
	Raw       string
	Type      string
	Err       error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: attribute %q: cannot use %q as %s: %v", e.Kind, e.Attribute, e.Raw, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
