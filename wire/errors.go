package wire

import (
	"errors"
	"fmt"
	"io"
)

// IOError reports a failure of the underlying stream.  It is fatal for the
// operation that observed it: the stream position is unknown afterwards.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ProtocolViolationError reports bytes that were read successfully but do not
// form a valid message.
type ProtocolViolationError struct {
	Reason string
}

func (e *ProtocolViolationError) Error() string {
	return "protocol violation: " + e.Reason
}

func violation(format string, args ...any) error {
	return &ProtocolViolationError{Reason: fmt.Sprintf(format, args...)}
}

func readError(op string, err error) error {
	if errors.Is(err, io.EOF) {
		// A value that started but did not finish is a short read no
		// matter where the stream ended.
		err = io.ErrUnexpectedEOF
	}
	return &IOError{Op: op, Err: err}
}

// IsShortRead returns true if err reports a stream that ended before a
// declared length was available.
func IsShortRead(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr) && errors.Is(ioErr.Err, io.ErrUnexpectedEOF)
}
