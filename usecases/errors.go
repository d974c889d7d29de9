package usecases

import "errors"

var (
	// ErrNotFound covers both absent records and records owned by someone
	// else; handlers answer 404 for either.
	ErrNotFound = errors.New("record not found")

	// ErrSelfFollow rejects a user following themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrNotParticipant rejects chat writes from outside the participant set.
	ErrNotParticipant = errors.New("not a chat participant")
)
