package brfunds

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by a Source that does not implement an operation.
var ErrUnsupported = errors.New("operation not supported by this source")

// InvalidPeriodError reports a period token that is not a known preset.
type InvalidPeriodError struct {
	Period string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q: want one of 1w, 2w, 1m, 2m, 3m, 6m, 1y, 2y, 3y, 4y, 5y", e.Period)
}

// MalformedDateError reports a text date that is not in the dd/mm/yy format.
type MalformedDateError struct {
	Text string
	Err  error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q: %v", e.Text, e.Err)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// InvalidRangeError reports a resolved range whose start is after its end.
type InvalidRangeError struct {
	From, To string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s", e.From, e.To)
}

// TransientShapeError reports a response that is missing an expected field or
// has an unexpected shape. Sources return it so that the Retrier can try again.
type TransientShapeError struct {
	Field string // path of the offending field, if known
	Err   error
}

// ShapeError returns a TransientShapeError for field.
func ShapeError(field string, format string, args ...any) *TransientShapeError {
	return &TransientShapeError{Field: field, Err: fmt.Errorf(format, args...)}
}

func (e *TransientShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unexpected response shape: %v", e.Err)
	}
	return fmt.Sprintf("unexpected response shape at %s: %v", e.Field, e.Err)
}

func (e *TransientShapeError) Unwrap() error { return e.Err }

// DataUnavailableError is returned once every attempt to fetch data for ID
// ended with a TransientShapeError.
type DataUnavailableError struct {
	ID       string
	Attempts int
	Err      error // last error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("could not load data for %q after %d attempts (%v): check CVM (http://sistemas.cvm.gov.br/fundos.asp) or Comparador de Fundos (https://www.comparadordefundos.com.br) for a valid fund identifier", e.ID, e.Attempts, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// RemoteRequestError reports a non successful HTTP status from a remote source.
type RemoteRequestError struct {
	StatusCode int
	URL        string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("cannot http GET %s: status %d", e.URL, e.StatusCode)
}
