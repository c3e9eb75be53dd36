package resp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ProtocolError is returned by Parse when the buffered bytes prove the
// stream is not valid RESP: an unrecognised type byte at a frame-start
// position, a malformed numeric or boolean payload, or a blob whose
// declared length is fully buffered but whose trailing CRLF is missing or
// wrong. A ProtocolError is fatal for the connection; the codec drops the
// remaining buffer once one is raised.
type ProtocolError struct {
	// Offset is the byte offset, within the buffer passed to Parse, at
	// which the malformed frame begins.
	Offset int
	cause  error
}

func newProtocolError(offset int, format string, args ...any) *ProtocolError {
	return &ProtocolError{Offset: offset, cause: errors.Errorf(format, args...)}
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("resp: protocol error at offset %d: %s", e.Offset, e.cause)
}

func (e *ProtocolError) Unwrap() error { return e.cause }

// EncodeArgumentError is returned by Codec.Encode when an argument is
// neither a string, a []byte, nor an integer kind.
type EncodeArgumentError struct {
	// Index is the zero-based position of the offending argument.
	Index int
	// Value is the offending argument itself.
	Value any
	cause error
}

func newEncodeArgumentError(index int, v any) *EncodeArgumentError {
	return &EncodeArgumentError{
		Index: index,
		Value: v,
		cause: errors.Errorf("argument %d has unsupported type %T", index, v),
	}
}

func (e *EncodeArgumentError) Error() string {
	return fmt.Sprintf("resp: encode: %s", e.cause)
}

func (e *EncodeArgumentError) Unwrap() error { return e.cause }
