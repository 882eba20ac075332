// errors.go defines sentinel errors for record validation failures.
//
// Every failure wraps ErrInvalidRecord so callers that only care about
// valid/invalid can test a single error. The second sentinel names the rule
// that failed; detail (offending field, position) is added with fmt.Errorf.

package validate

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrFieldCount    = errors.New("wrong number of fields")
	ErrInvalidName   = errors.New("invalid product name")
	ErrInvalidSize   = errors.New("size is not an integer")
	ErrSizeRange     = errors.New("size out of range")
	ErrSizeOrder     = errors.New("sizes not strictly ascending")
)

// fail wraps rule and a formatted detail under ErrInvalidRecord.
func fail(rule error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidRecord, rule, fmt.Sprintf(format, args...))
}
