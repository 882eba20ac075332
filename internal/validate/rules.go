// rules.go holds the field-level rules: NameRule for the product name and
// SizeRule for each size.
//
// Bounds are expressed as go-playground/validator tags so the same rules
// back both the field checks used while parsing and the struct tags on
// Record. Ordering across sizes needs the previous value, so it is checked
// here for single fields and by the custom "ascending" tag for whole records.

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Record bounds.
const (
	MinNameLen = 2
	MaxNameLen = 15
	MinSize    = 1
	MaxSize    = 48
	MinSizes   = 1
	MaxSizes   = 5
)

var (
	nameRule = fmt.Sprintf("required,min=%d,max=%d,alpha", MinNameLen, MaxNameLen)
	sizeRule = fmt.Sprintf("min=%d,max=%d", MinSize, MaxSize)
)

var rules = newRules()

func newRules() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("ascending", ascending); err != nil {
		// Only fails for an empty or reserved tag name.
		panic("validate: register ascending: " + err.Error())
	}
	return v
}

// ascending reports whether an integer slice is strictly increasing.
// Lower bounds are left to the element rules after dive.
func ascending(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Slice {
		return false
	}
	for i := 1; i < f.Len(); i++ {
		if f.Index(i).Int() <= f.Index(i-1).Int() {
			return false
		}
	}
	return true
}

// Name validates a normalised product name.
//
// Validation rules:
//   - Non-empty
//   - MinNameLen to MaxNameLen characters
//   - ASCII letters only (no digits, punctuation or accented letters)
func Name(s string) error {
	if err := rules.Var(s, nameRule); err != nil {
		return fail(ErrInvalidName, "%q must be %d-%d letters", s, MinNameLen, MaxNameLen)
	}
	return nil
}

// Size validates a single normalised size field and returns its value.
// previous is the last accepted size in the record (0 for the first one);
// the field must be strictly greater than it.
func Size(field string, previous int) (int, error) {
	n, err := parseSize(field)
	if err != nil {
		return 0, err
	}
	if err := rules.Var(n, sizeRule); err != nil {
		return 0, fail(ErrSizeRange, "%d not in %d-%d", n, MinSize, MaxSize)
	}
	if n <= previous {
		return 0, fail(ErrSizeOrder, "%d after %d", n, previous)
	}
	return n, nil
}

// parseSize converts a field to a platform-sized int. Parse failures are
// returned as ErrInvalidSize, never panics.
func parseSize(field string) (int, error) {
	n, err := strconv.ParseInt(field, 10, strconv.IntSize)
	if err == nil {
		return int(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fail(ErrInvalidSize, "%q overflows int", field)
	}
	return 0, fail(ErrInvalidSize, "%q", field)
}
