// Package protocol implements the SDS011 laser dust sensor serial protocol.
//
// This package provides functions to build query frames and parse reply
// frames according to the Nova Fitness SDS011 control protocol (V1.3). It
// performs no I/O; the sds011 package drives a sensor with it.
//
// # Protocol Overview
//
// The sensor speaks a fixed-format binary protocol over a 9600 8N1 serial
// line. Queries travel host to sensor, replies sensor to host:
//
//	Query (19 bytes): [HEAD][CMD][SUB][PAYLOAD(12)][ID_H][ID_L][CHECKSUM][TAIL]
//	Reply (10 bytes): [HEAD][CMD][DATA(6)][CHECKSUM][TAIL]
//
// Where:
//   - HEAD = frame start marker (0xAA)
//   - TAIL = frame end marker (0xAB)
//   - CMD  = 0xB4 for queries, 0xC0 for measurement replies, 0xC5 for
//     acknowledgements
//   - CHECKSUM = 8-bit truncated sum over the payload and ID bytes
//
// Device IDs are big-endian; the two PM concentrations in a measurement
// reply are the protocol's only little-endian fields.
//
// # Building Queries
//
// BuildQuery turns any Kind value into a ready-to-send frame:
//
//	frame := protocol.BuildQuery(protocol.Measurement{}, protocol.BroadcastID)
//	frame := protocol.BuildQuery(protocol.Sleep{
//	    Query: protocol.QueryModeSet,
//	    Mode:  protocol.SleepModeWork,
//	}, protocol.BroadcastID)
//
// # Parsing Replies
//
// ParseReply validates a 10-byte frame and decodes it into a Message. Type
// switch on Message.Kind for the operation-specific fields:
//
//	msg, err := protocol.ParseReply(frame)
//	if err != nil {
//	    return err
//	}
//	switch kind := msg.Kind.(type) {
//	case protocol.Measurement:
//	    fmt.Println(kind) // PM2.5: 123.6 µg/m³, PM10: 261.8 µg/m³
//	case protocol.FirmwareVersion:
//	    fmt.Println(kind) // 2015.07.10
//	}
//
// # Error Handling
//
// ParseReply returns typed errors describing exactly what was malformed:
// ChecksumError, UnknownCommandError, UnknownSubcommandError,
// BooleanFieldError, TimeFieldError and FrameFormatError. Frame markers are
// checked last so that a checksum or field problem is never misreported as
// a framing problem, and so the one firmware quirk this package tolerates
// (a set-sleep acknowledgement ending in 0xFF instead of 0xAB) can be keyed
// on the decoded kind.
//
// # Reference
//
// Laser Dust Sensor Control Protocol V1.3, Nova Fitness Co., Ltd.
package protocol
