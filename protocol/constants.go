package protocol

// Frame structure constants per the SDS011 control protocol datasheet.
const (
	// FrameHead is the frame start marker (0xAA)
	FrameHead = 0xAA

	// FrameTail is the frame end marker (0xAB)
	FrameTail = 0xAB

	// SleepReplyTail is the alternate end marker some firmware revisions
	// emit on the acknowledgement of a set-sleep command (0xFF)
	SleepReplyTail = 0xFF

	// QuerySize is the fixed size of a host-to-sensor query frame in bytes
	QuerySize = 19

	// ReplySize is the fixed size of a sensor-to-host reply frame in bytes
	ReplySize = 10
)

// Command IDs occupying byte 1 of a frame.
const (
	// CmdQuery marks a host-to-sensor query frame
	CmdQuery = 0xB4

	// CmdReplyMeasurement marks a sensor reply carrying measurement data
	CmdReplyMeasurement = 0xC0

	// CmdReplyAck marks a sensor reply acknowledging a configuration query
	CmdReplyAck = 0xC5
)

// Subcommand IDs selecting the operation of a query or acknowledgement.
// In queries the subcommand occupies byte 2; in acknowledgement replies it
// echoes back in the same position. Measurement replies carry data there
// instead and are identified by their command ID alone.
const (
	// SubReporting queries or sets the data reporting mode
	SubReporting = 2

	// SubMeasurement requests a single measurement (query reporting mode)
	SubMeasurement = 4

	// SubNewDeviceID assigns a new device ID to the sensor
	SubNewDeviceID = 5

	// SubSleep queries or sets the sleep/work state
	SubSleep = 6

	// SubFirmwareVersion requests the firmware version
	SubFirmwareVersion = 7

	// SubWorkingPeriod queries or sets the periodic working period
	SubWorkingPeriod = 8
)

// BroadcastID is the device ID that addresses every sensor on the bus.
// Queries sent with this target are answered regardless of the sensor's
// configured ID.
const BroadcastID uint16 = 0xFFFF

// MaxWorkingPeriod is the largest accepted working period in minutes.
// Zero selects continuous reporting; 1 through 30 select one measurement
// per period with the fan powered down in between.
const MaxWorkingPeriod = 30

// Byte offsets shared by queries and replies.
const (
	// posCommand is the offset of the command ID
	posCommand = 1

	// posSubcommand is the offset of the subcommand in queries and
	// acknowledgement replies
	posSubcommand = 2

	// posFlag is the offset of the query/set flag within the payload
	posFlag = 3

	// posValue is the offset of the mode or period value within the payload
	posValue = 4
)

// Byte offsets specific to reply frames.
const (
	// replyPayloadStart is the first payload byte of a reply
	replyPayloadStart = 2

	// replyDeviceIDPos is the offset of the responding sensor's ID
	replyDeviceIDPos = 6

	// replyChecksumPos is the offset of the reply checksum
	replyChecksumPos = 8

	// replyTailPos is the offset of the reply end marker
	replyTailPos = 9
)

// Byte offsets specific to query frames.
const (
	// queryPayloadStart is the first payload byte of a query
	queryPayloadStart = 2

	// queryNewIDPos is the offset of the ID to assign in a set-device-ID
	// query
	queryNewIDPos = 13

	// queryTargetIDPos is the offset of the target device ID
	queryTargetIDPos = 15

	// queryChecksumPos is the offset of the query checksum
	queryChecksumPos = 17

	// queryTailPos is the offset of the query end marker
	queryTailPos = 18
)
