package catalog

import "errors"

// Custom catalog store errors
var (
	// ErrStoreUnavailable indicates the store handle was never established
	// (misconfiguration). Reads degrade to an empty catalog; writes surface it.
	ErrStoreUnavailable = errors.New("catalog store is not configured")

	// ErrWriteFailed indicates a create/update/delete request was rejected
	// or the transport failed
	ErrWriteFailed = errors.New("catalog write failed")

	// ErrNotFound indicates the requested video does not exist in the store
	ErrNotFound = errors.New("video not found")
)

// IsStoreUnavailable checks if the error is a store unavailable error
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsWriteFailed checks if the error is a write failure
func IsWriteFailed(err error) bool {
	return errors.Is(err, ErrWriteFailed)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
