package protocol

import (
	"encoding/binary"
	"fmt"
)

// ParseReply decodes a sensor reply frame into a Message. The frame must be
// exactly ReplySize bytes.
//
// Reply frame structure:
//
//	[HEAD][CMD][DATA(6)][CHECKSUM][TAIL]
//
// where the last two DATA bytes carry the responding sensor's ID.
//
// Validation runs checksum first, then command and payload fields, then the
// frame markers. The order is observable through the returned error when a
// frame is broken in more than one way. The head byte must always be
// FrameHead; the tail must be FrameTail, except that the acknowledgement of
// a set-sleep command may end in SleepReplyTail instead. Some firmware
// revisions corrupt exactly that byte while powering down.
func ParseReply(frame []byte) (Message, error) {
	if len(frame) != ReplySize {
		return Message{}, fmt.Errorf("reply must be %d bytes, got %d", ReplySize, len(frame))
	}

	computed := Checksum(frame[replyPayloadStart:replyChecksumPos])
	if computed != frame[replyChecksumPos] {
		return Message{}, &ChecksumError{Computed: computed, Expected: frame[replyChecksumPos]}
	}

	kind, err := parseKind(frame)
	if err != nil {
		return Message{}, err
	}

	if err := checkMarkers(frame, kind); err != nil {
		return Message{}, err
	}

	return Message{
		Kind:     kind,
		DeviceID: binary.BigEndian.Uint16(frame[replyDeviceIDPos : replyDeviceIDPos+2]),
	}, nil
}

// parseKind dispatches on the command and subcommand bytes and decodes the
// operation-specific payload.
func parseKind(frame []byte) (Kind, error) {
	switch frame[posCommand] {
	case CmdReplyMeasurement:
		return parseMeasurement(frame), nil
	case CmdReplyAck:
		switch frame[posSubcommand] {
		case SubReporting:
			return parseReporting(frame)
		case SubNewDeviceID:
			return parseNewDeviceID(frame), nil
		case SubSleep:
			return parseSleep(frame)
		case SubFirmwareVersion:
			return parseFirmwareVersion(frame), nil
		case SubWorkingPeriod:
			return parseWorkingPeriod(frame)
		default:
			return nil, &UnknownSubcommandError{Subcommand: frame[posSubcommand]}
		}
	default:
		return nil, &UnknownCommandError{Command: frame[posCommand]}
	}
}

// checkMarkers validates the head and tail bytes, allowing the set-sleep
// tail quirk.
func checkMarkers(frame []byte, kind Kind) error {
	head, tail := frame[0], frame[replyTailPos]
	if head != FrameHead {
		return &FrameFormatError{Head: head, Tail: tail}
	}
	if tail == FrameTail {
		return nil
	}
	if s, ok := kind.(Sleep); ok && s.Query == QueryModeSet && tail == SleepReplyTail {
		return nil
	}
	return &FrameFormatError{Head: head, Tail: tail}
}

// parseBit validates a wire field that only admits 0 or 1.
func parseBit(value byte) (byte, error) {
	if value > 1 {
		return 0, &BooleanFieldError{Value: value}
	}
	return value, nil
}

// parseMeasurement decodes a measurement reply.
//
// Data format:
//
//	[PM25_L][PM25_H][PM10_L][PM10_H][ID_H][ID_L]
//
// The concentrations are the only little-endian fields in the protocol.
func parseMeasurement(frame []byte) Measurement {
	return Measurement{
		PM25: binary.LittleEndian.Uint16(frame[2:4]),
		PM10: binary.LittleEndian.Uint16(frame[4:6]),
	}
}

// parseReporting decodes a reporting mode acknowledgement.
//
// Data format:
//
//	[SUB][FLAG][MODE][0x00][ID_H][ID_L]
func parseReporting(frame []byte) (Kind, error) {
	query, err := parseBit(frame[posFlag])
	if err != nil {
		return nil, err
	}
	mode, err := parseBit(frame[posValue])
	if err != nil {
		return nil, err
	}
	return Reporting{Query: QueryMode(query), Mode: ReportingMode(mode)}, nil
}

// parseSleep decodes a sleep state acknowledgement.
//
// Data format:
//
//	[SUB][FLAG][MODE][0x00][ID_H][ID_L]
func parseSleep(frame []byte) (Kind, error) {
	query, err := parseBit(frame[posFlag])
	if err != nil {
		return nil, err
	}
	mode, err := parseBit(frame[posValue])
	if err != nil {
		return nil, err
	}
	return Sleep{Query: QueryMode(query), Mode: SleepMode(mode)}, nil
}

// parseWorkingPeriod decodes a working period acknowledgement.
//
// Data format:
//
//	[SUB][FLAG][MINUTES][0x00][ID_H][ID_L]
func parseWorkingPeriod(frame []byte) (Kind, error) {
	query, err := parseBit(frame[posFlag])
	if err != nil {
		return nil, err
	}
	minutes := frame[posValue]
	if minutes > MaxWorkingPeriod {
		return nil, &TimeFieldError{Value: minutes}
	}
	return WorkingPeriod{Query: QueryMode(query), Minutes: minutes}, nil
}

// parseFirmwareVersion decodes a firmware version acknowledgement.
//
// Data format:
//
//	[SUB][YEAR][MONTH][DAY][ID_H][ID_L]
func parseFirmwareVersion(frame []byte) Kind {
	return FirmwareVersion{
		Year:  frame[3],
		Month: frame[4],
		Day:   frame[5],
	}
}

// parseNewDeviceID decodes a set-device-ID acknowledgement. The assigned ID
// sits in the device ID field, so the kind mirrors Message.DeviceID.
func parseNewDeviceID(frame []byte) Kind {
	return NewDeviceID{
		ID: binary.BigEndian.Uint16(frame[replyDeviceIDPos : replyDeviceIDPos+2]),
	}
}
