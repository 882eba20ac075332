// Package validate checks cafeteria product records.
//
// A record is a single line of comma-separated fields: a product name
// followed by one to five sizes, e.g. "ZumoNa,1,2,3". Spaces anywhere in a
// field are ignored, so " Zum oNa, 1 ,2" is the same record.
//
// # Rules
//
// The name must be 2 to 15 ASCII letters. Each size must be a base-10
// integer between 1 and 48, and sizes must be strictly ascending (which also
// rejects duplicates).
//
// # Error Handling
//
// Valid reports a plain boolean. Parse returns the reason for a rejection,
// always wrapping ErrInvalidRecord plus one of the more specific sentinel
// errors defined in errors.go:
//
//	if _, err := validate.Parse(line); errors.Is(err, validate.ErrSizeOrder) {
//	    // sizes out of order
//	}
//
// All functions are pure and safe for concurrent use.
package validate
