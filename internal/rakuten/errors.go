package rakuten

import "fmt"

// UnavailableError is an error type for when the search API could not be
// reached at all (connection failure, timeout).
type UnavailableError struct {
	Err error
}

// Error returns the error message.
func (e UnavailableError) Error() string {
	return fmt.Sprintf("ichiba search unavailable: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e UnavailableError) Unwrap() error {
	return e.Err
}

// APIError is an error type for when the search API responded with a
// non-success status or an unparseable payload.
type APIError struct {
	Status int
	Body   string
	Err    error
}

// Error returns the error message.
func (e APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ichiba search API error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("ichiba search API returned status %d: %s", e.Status, e.Body)
}
