package weather

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrEmptyQuery is returned when a location query is blank after trimming.
	ErrEmptyQuery = errors.New("location query is empty")

	// ErrNoData is returned when the generative service answers with no text.
	ErrNoData = errors.New("no data")

	// ErrGeolocationDenied is returned when the device location could not be
	// read, either because access was refused or the reading was unusable.
	ErrGeolocationDenied = errors.New("location access denied")
)

// AcquisitionError reports a failed forecast acquisition: the outbound call
// failed, returned nothing, or returned text that did not validate.
//
// Ref correlates the logged cause with what the user is shown.
type AcquisitionError struct {
	Query string
	Ref   string
	Err   error
}

func newAcquisitionError(query string, err error) *AcquisitionError {
	return &AcquisitionError{
		Query: query,
		Ref:   uuid.NewString(),
		Err:   err,
	}
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire forecast for %q: %v", e.Query, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// IsAcquisitionError reports whether err is or wraps an *AcquisitionError.
func IsAcquisitionError(err error) bool {
	var ae *AcquisitionError
	return errors.As(err, &ae)
}
