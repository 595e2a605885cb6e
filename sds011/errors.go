package sds011

import (
	"fmt"

	"github.com/kenohassler/go-sds011/protocol"
)

// WriteError indicates that the transport failed while a query was being
// written.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write query: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError indicates that the transport failed while a reply was being
// read.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read reply: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ShortReadError indicates that the stream ended before a full reply
// frame arrived.
type ShortReadError struct {
	// Read is the number of bytes received
	Read int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read: got %d of %d reply bytes", e.Read, protocol.ReplySize)
}

// ShortWriteError indicates that the transport accepted fewer bytes than a
// query frame holds.
type ShortWriteError struct {
	// Wrote is the number of bytes accepted
	Wrote int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write: wrote %d of %d query bytes", e.Wrote, protocol.QuerySize)
}

// UnexpectedReplyError indicates that the sensor answered with a different
// message kind than the in-flight query expects.
type UnexpectedReplyError struct {
	// Want is the kind the query asked for
	Want protocol.Kind

	// Got is the kind the sensor sent
	Got protocol.Kind
}

func (e *UnexpectedReplyError) Error() string {
	return fmt.Sprintf("unexpected reply kind %T (want %T)", e.Got, e.Want)
}

// OperationFailedError indicates that the sensor acknowledged a command
// without confirming the requested value.
type OperationFailedError struct {
	// Op names the setting that was not confirmed
	Op string
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("the sensor did not confirm the requested %s", e.Op)
}

// InvalidParameterError indicates a caller-supplied value outside the
// protocol's range, rejected before any I/O.
type InvalidParameterError struct {
	// Param names the rejected parameter
	Param string

	// Value is the rejected value
	Value uint16
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%d is not a valid %s", e.Value, e.Param)
}
