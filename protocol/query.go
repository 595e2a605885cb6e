package protocol

import "encoding/binary"

// BuildQuery constructs a query frame for the given kind, addressed to the
// given device ID. Pass BroadcastID to address every sensor on the bus.
//
// Frame structure:
//
//	[HEAD][CMD][SUB][PAYLOAD(12)][ID_H][ID_L][CHECKSUM][TAIL]
//
// Payload bytes the kind does not use stay zero. The returned frame is
// always QuerySize bytes and ready to send.
func BuildQuery(kind Kind, target uint16) []byte {
	frame := make([]byte, QuerySize)

	frame[0] = FrameHead
	frame[posCommand] = CmdQuery

	kind.populateQuery(frame)

	binary.BigEndian.PutUint16(frame[queryTargetIDPos:queryTargetIDPos+2], target)
	frame[queryChecksumPos] = Checksum(frame[queryPayloadStart:queryChecksumPos])
	frame[queryTailPos] = FrameTail

	return frame
}

func (Measurement) populateQuery(frame []byte) {
	frame[posSubcommand] = SubMeasurement
}

func (r Reporting) populateQuery(frame []byte) {
	frame[posSubcommand] = SubReporting
	frame[posFlag] = byte(r.Query)
	frame[posValue] = byte(r.Mode)
}

func (s Sleep) populateQuery(frame []byte) {
	frame[posSubcommand] = SubSleep
	frame[posFlag] = byte(s.Query)
	frame[posValue] = byte(s.Mode)
}

func (w WorkingPeriod) populateQuery(frame []byte) {
	frame[posSubcommand] = SubWorkingPeriod
	frame[posFlag] = byte(w.Query)
	frame[posValue] = w.Minutes
}

func (FirmwareVersion) populateQuery(frame []byte) {
	frame[posSubcommand] = SubFirmwareVersion
}

func (n NewDeviceID) populateQuery(frame []byte) {
	frame[posSubcommand] = SubNewDeviceID
	binary.BigEndian.PutUint16(frame[queryNewIDPos:queryNewIDPos+2], n.ID)
}
