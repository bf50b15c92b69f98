package stimulus

import "fmt"

// InvalidParameterError is returned when a request parameter is out
// of range. Nothing is generated when it is returned.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// OutputError is returned when a stimulus could not be written to
// disk, for example because the output directory is missing.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
