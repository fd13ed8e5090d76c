package domain

import (
	"errors"
	"fmt"
)

// ErrTranscriptNotFound is returned when a stored assessment has no user
// turns left to rescore.
var ErrTranscriptNotFound = errors.New("no stored transcript for conversation")

// NotFoundError reports a missing record, keyed by the kind of record and the
// identifier the caller asked for.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
