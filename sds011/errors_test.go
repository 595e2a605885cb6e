package sds011

import (
	"errors"
	"strings"
	"testing"

	"github.com/kenohassler/go-sds011/protocol"
)

func TestWriteError(t *testing.T) {
	inner := errors.New("device unplugged")
	err := &WriteError{Err: inner}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "write query") {
		t.Errorf("error message should contain 'write query', got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "device unplugged") {
		t.Errorf("error message should contain the transport error, got: %s", errMsg)
	}

	if !errors.Is(err, inner) {
		t.Error("WriteError should unwrap to the transport error")
	}
}

func TestReadError(t *testing.T) {
	inner := errors.New("device unplugged")
	err := &ReadError{Err: inner}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "read reply") {
		t.Errorf("error message should contain 'read reply', got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "device unplugged") {
		t.Errorf("error message should contain the transport error, got: %s", errMsg)
	}

	if !errors.Is(err, inner) {
		t.Error("ReadError should unwrap to the transport error")
	}
}

func TestShortReadError(t *testing.T) {
	err := &ShortReadError{Read: 4}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "short read") {
		t.Errorf("error message should contain 'short read', got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "4 of 10") {
		t.Errorf("error message should contain the byte counts, got: %s", errMsg)
	}
}

func TestShortWriteError(t *testing.T) {
	err := &ShortWriteError{Wrote: 9}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "short write") {
		t.Errorf("error message should contain 'short write', got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "9 of 19") {
		t.Errorf("error message should contain the byte counts, got: %s", errMsg)
	}
}

func TestUnexpectedReplyErrorMessage(t *testing.T) {
	err := &UnexpectedReplyError{
		Want: protocol.Sleep{},
		Got:  protocol.Measurement{},
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "unexpected reply kind") {
		t.Errorf("error message should contain 'unexpected reply kind', got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "protocol.Measurement") {
		t.Errorf("error message should name the received kind, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "protocol.Sleep") {
		t.Errorf("error message should name the wanted kind, got: %s", errMsg)
	}
}

func TestOperationFailedErrorMessage(t *testing.T) {
	err := &OperationFailedError{Op: "reporting mode"}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "did not confirm") {
		t.Errorf("error message should contain 'did not confirm', got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "reporting mode") {
		t.Errorf("error message should contain the operation, got: %s", errMsg)
	}
}

func TestInvalidParameterErrorMessage(t *testing.T) {
	err := &InvalidParameterError{Param: "working period", Value: 31}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "31") {
		t.Errorf("error message should contain the value, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "working period") {
		t.Errorf("error message should contain the parameter name, got: %s", errMsg)
	}
}

func TestErrorTypes(t *testing.T) {
	// Test that all error types implement error interface
	var _ error = &WriteError{}
	var _ error = &ReadError{}
	var _ error = &ShortReadError{}
	var _ error = &ShortWriteError{}
	var _ error = &UnexpectedReplyError{}
	var _ error = &OperationFailedError{}
	var _ error = &InvalidParameterError{}
}
