package validators

import "context"

// Validator checks a domain value. When fields is empty every field known
// for the value's type is checked; otherwise only the listed ones.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
