package camgesture

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyAccepted is returned when a second recognizer (or the same
	// one twice) tries to win an arbitration session.
	ErrAlreadyAccepted = errors.New("camgesture: session already accepted a recognizer")
	// ErrAlreadyResolved is returned when a recognizer that already left the
	// pending state calls Accept or Reject again.
	ErrAlreadyResolved = errors.New("camgesture: recognizer already resolved")
	// ErrSessionClosed is returned for Accept or Reject after the session ended
	// or its arbiter was disposed.
	ErrSessionClosed = errors.New("camgesture: arbitration session closed")
	// ErrNoAnchor is returned when a slop distance is queried before the
	// recognizer saw its contact-down sample.
	ErrNoAnchor = errors.New("camgesture: no anchor recorded")
	// ErrTooManyRecognizers is returned by Arbiter.Register past MaxRecognizers.
	ErrTooManyRecognizers = errors.New("camgesture: too many recognizers")
)

// InteractionTypeError reports an unknown primary interaction name.
type InteractionTypeError struct {
	Value string
}

func (e *InteractionTypeError) Error() string {
	return fmt.Sprintf("camgesture: unknown interaction type %q (want rotate, pan or zoom)", e.Value)
}
