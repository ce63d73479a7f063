package protocol

import (
	"errors"
	"fmt"

	"github.com/brimdata/native/wire"
)

// MaxExceptionDepth bounds the length of an exception chain read from a
// server.
const MaxExceptionDepth = 128

var ErrWriteUnsupported = errors.New("exception responses cannot be sent to a server")

// ServerError is one exception record sent by the server.  Cause links to
// the exception that caused it, if any.
type ServerError struct {
	Code       int32
	Name       string
	Message    string
	StackTrace string
	Cause      *ServerError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Name, e.Message, e.Code)
}

func (e *ServerError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Chain returns e and its causes, outermost first.
func (e *ServerError) Chain() []*ServerError {
	var chain []*ServerError
	for ; e != nil; e = e.Cause {
		chain = append(chain, e)
	}
	return chain
}

// ReadException decodes an exception chain.  Each record is followed by a
// flag telling whether a nested record follows.  A chain longer than
// MaxExceptionDepth is a protocol violation.
func ReadException(d *wire.Deserializer) (*ServerError, error) {
	var head, tail *ServerError
	for depth := 0; ; depth++ {
		if depth == MaxExceptionDepth {
			return nil, &wire.ProtocolViolationError{
				Reason: fmt.Sprintf("exception chain longer than %d records", MaxExceptionDepth),
			}
		}
		e, more, err := readExceptionRecord(d)
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = e
		} else {
			tail.Cause = e
		}
		tail = e
		if !more {
			return head, nil
		}
	}
}

func readExceptionRecord(d *wire.Deserializer) (*ServerError, bool, error) {
	code, err := d.ReadInt32()
	if err != nil {
		return nil, false, err
	}
	name, err := d.ReadString()
	if err != nil {
		return nil, false, err
	}
	message, err := d.ReadString()
	if err != nil {
		return nil, false, err
	}
	stack, err := d.ReadString()
	if err != nil {
		return nil, false, err
	}
	more, err := d.ReadBool()
	if err != nil {
		return nil, false, err
	}
	return &ServerError{
		Code:       code,
		Name:       name,
		Message:    message,
		StackTrace: stack,
	}, more, nil
}

// ExceptionResponse is the response carrying a server exception.
type ExceptionResponse struct {
	Err *ServerError
}

func (*ExceptionResponse) Type() ServerPacket {
	return ServerException
}

func (*ExceptionResponse) Write(*wire.Serializer) error {
	return ErrWriteUnsupported
}
