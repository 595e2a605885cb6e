package protocol

import "fmt"

// ChecksumError indicates that the checksum computed over a reply does not
// match the checksum byte the sensor sent.
type ChecksumError struct {
	// Computed is the checksum calculated over the received frame
	Computed byte

	// Expected is the checksum byte the frame carries
	Expected byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed 0x%02X, frame carries 0x%02X",
		e.Computed, e.Expected)
}

// FrameFormatError indicates that a reply does not carry the expected frame
// markers.
type FrameFormatError struct {
	// Head is the first byte of the frame
	Head byte

	// Tail is the last byte of the frame
	Tail byte
}

func (e *FrameFormatError) Error() string {
	return fmt.Sprintf("invalid frame markers: head 0x%02X, tail 0x%02X (want 0x%02X and 0x%02X)",
		e.Head, e.Tail, FrameHead, FrameTail)
}

// UnknownCommandError indicates a reply command ID this package does not
// recognize.
type UnknownCommandError struct {
	// Command is the unrecognized command ID
	Command byte
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("0x%02X is an unknown command ID", e.Command)
}

// UnknownSubcommandError indicates an acknowledgement subcommand this
// package does not recognize.
type UnknownSubcommandError struct {
	// Subcommand is the unrecognized subcommand
	Subcommand byte
}

func (e *UnknownSubcommandError) Error() string {
	return fmt.Sprintf("%d is an unknown subcommand", e.Subcommand)
}

// BooleanFieldError indicates that a wire field admitting only 0 or 1
// carried another value.
type BooleanFieldError struct {
	// Value is the out-of-range byte
	Value byte
}

func (e *BooleanFieldError) Error() string {
	return fmt.Sprintf("%d is out of range for a boolean field (0,1)", e.Value)
}

// TimeFieldError indicates a working period outside the accepted range.
type TimeFieldError struct {
	// Value is the out-of-range period in minutes
	Value byte
}

func (e *TimeFieldError) Error() string {
	return fmt.Sprintf("%d is out of range for a working period (0-%d minutes)",
		e.Value, MaxWorkingPeriod)
}
