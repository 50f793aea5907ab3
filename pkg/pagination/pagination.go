package pagination

import "strconv"

const (
	// DefaultLimit is the page size used when the client omits the limit or
	// sends something unusable.
	DefaultLimit = 25
	// MaxLimit caps the page size a client may request in a single call.
	MaxLimit = 100
)

// Window is the {limit, offset} slice of an ordered collection that one page
// represents.
type Window struct {
	Limit  int
	Offset int
}

// Compute derives a usable window from raw, untrusted query values. A
// missing, non-numeric, zero, or negative limit falls back to DefaultLimit
// and is capped at MaxLimit; a missing, non-numeric, or negative offset
// falls back to 0. Malformed input never fails the request.
func Compute(rawLimit, rawOffset string) Window {
	w := Window{Limit: DefaultLimit}

	if limit, err := strconv.Atoi(rawLimit); err == nil && limit > 0 {
		w.Limit = limit
		if w.Limit > MaxLimit {
			w.Limit = MaxLimit
		}
	}

	if offset, err := strconv.Atoi(rawOffset); err == nil && offset > 0 {
		w.Offset = offset
	}

	return w
}
