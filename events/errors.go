package events

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingAttributes reports subscription-response JSON without an
// `attributes` field.
var ErrMissingAttributes = errors.New("json missing `attributes` field")

// MissingKeyError reports an attribute record without a `key` field. It
// carries the serialized record for diagnostics.
type MissingKeyError struct {
	Attribute string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("attributes missing key: %s", e.Attribute)
}

// MissingValueError reports an attribute record without a `value` field.
type MissingValueError struct {
	Attribute string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("attributes missing value: %s", e.Attribute)
}
