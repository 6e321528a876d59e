package survey

import (
	"github.com/pkg/errors"

	"github.com/KunalBhamoriya/survey-maker/store"
)

var (
	// ErrNotFound is returned when the referenced survey does not exist.
	ErrNotFound = errors.New("survey not found")
	// ErrForbidden is returned when the caller does not own the survey.
	ErrForbidden = errors.New("not the survey owner")
)

// ValidationError reports malformed authoring input.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// StoreError wraps an underlying persistence failure. The cause is opaque
// to callers but preserved for logging.
type StoreError struct {
	cause error
}

func (e StoreError) Error() string {
	return "store failure: " + e.cause.Error()
}

func (e StoreError) Unwrap() error {
	return e.cause
}

// storeFail maps a store failure into the service error taxonomy,
// translating the store's not-found sentinel.
func storeFail(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return StoreError{cause: errors.Wrap(err, msg)}
}
