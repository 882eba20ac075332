// record.go splits an input line into fields and validates it as a whole.

package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Delimiter separates fields in a record.
const Delimiter = ","

// Record is a validated product record.
type Record struct {
	Name  string `json:"name" validate:"required,min=2,max=15,alpha"`
	Sizes []int  `json:"sizes" validate:"min=1,max=5,ascending,dive,min=1,max=48"`
}

// String returns the canonical form of the record, e.g. "ZumoNa,1,2,3".
func (r Record) String() string {
	fields := append([]string{r.Name}, lo.Map(r.Sizes, func(n int, _ int) string {
		return strconv.Itoa(n)
	})...)
	return strings.Join(fields, Delimiter)
}

// Validate checks a Record built outside Parse (e.g. decoded from JSON)
// against the same rules. The returned error wraps the sentinel of the
// first rule that failed.
func (r Record) Validate() error {
	err := rules.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	fe := verrs[0]
	switch {
	case fe.StructField() == "Name":
		return fail(ErrInvalidName, "%q must be %d-%d letters", r.Name, MinNameLen, MaxNameLen)
	case fe.StructField() == "Sizes" && fe.Tag() == "ascending":
		return fail(ErrSizeOrder, "%v", r.Sizes)
	case fe.StructField() == "Sizes":
		return fail(ErrFieldCount, "got %d sizes, want %d to %d", len(r.Sizes), MinSizes, MaxSizes)
	default:
		return fail(ErrSizeRange, "%v not in %d-%d", fe.Value(), MinSize, MaxSize)
	}
}

// Split splits input on Delimiter without normalising the fields. A single
// trailing delimiter does not start a new field, and empty input has no
// fields at all.
func Split(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, Delimiter)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Fields splits input like Split and removes every space from each field.
// Only U+0020 is removed; tabs and other whitespace are kept and fail the
// field rules.
func Fields(input string) []string {
	parts := Split(input)
	if parts == nil {
		return nil
	}
	return lo.Map(parts, func(p string, _ int) string {
		return strings.ReplaceAll(p, " ", "")
	})
}

// Parse validates input and returns the parsed record.
//
// Validation rules:
//   - 1 to 5 sizes after the name (2 to 6 fields in total)
//   - Name satisfies Name
//   - Every size satisfies Size, each greater than the one before
func Parse(input string) (Record, error) {
	fields := Fields(input)
	if len(fields) < MinSizes+1 || len(fields) > MaxSizes+1 {
		return Record{}, fail(ErrFieldCount, "got %d, want %d to %d", len(fields), MinSizes+1, MaxSizes+1)
	}
	if err := Name(fields[0]); err != nil {
		return Record{}, err
	}

	sizes := make([]int, 0, len(fields)-1)
	prev := 0
	for _, f := range fields[1:] {
		n, err := Size(f, prev)
		if err != nil {
			return Record{}, err
		}
		sizes = append(sizes, n)
		prev = n
	}
	return Record{Name: fields[0], Sizes: sizes}, nil
}

// Valid reports whether input is a valid record.
func Valid(input string) bool {
	_, err := Parse(input)
	return err == nil
}
