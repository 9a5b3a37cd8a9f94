package optimistic

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationMissing is returned when a create or delete is attempted without an acting user
	ErrAuthenticationMissing = errors.New("acting user is not authenticated")

	// ErrDuplicateID indicates that an entity with the same id is already held locally
	ErrDuplicateID = errors.New("entity with this id already exists locally")

	// ErrInvalidEntity indicates that an entity failed validation (empty id, bad remote shape)
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrIncompleteIntent indicates that a required remote operation is missing from an intent
	ErrIncompleteIntent = errors.New("mutation intent is missing a remote operation")
)

// RemoteError wraps a failure returned by the remote record store.
// The local state has been reverted by the time it is reported.
type RemoteError struct {
	Err error
	Op  Kind
	ID  string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s of %s failed: %v", e.Op, e.ID, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
