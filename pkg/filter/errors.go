package filter

import "fmt"

// ImmutableFieldError reports an attempt to rename a Field that already
// carries a bound name.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field %s is immutable", e.Field)
}
