package clientfeed

import "fmt"

// ConvertError reports a fatal failure at the row-source or output
// boundary. Row-level problems never surface as errors; malformed cells
// degrade to field omission inside the mapper.
type ConvertError struct {
	Stage string // "source" or "output"
	Path  string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("conversion failed at %s (%s): %v", e.Stage, e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
