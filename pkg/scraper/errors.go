package scraper

import "fmt"

// FetchError reports a failed document fetch: network error, timeout,
// or a non-success HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: received status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StructureError means the document no longer contains the expected
// section or table. The source shape is assumed stable, so this is a
// hard failure rather than a soft skip.
type StructureError struct {
	Missing string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("document structure mismatch: could not find %s", e.Missing)
}

// ValidationError means extraction ran to completion but produced no
// usable records, which usually indicates every row was individually
// skipped after a silent shape change.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("extraction validation failed: %s", e.Reason)
}
