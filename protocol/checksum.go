package protocol

// Checksum computes the 8-bit checksum over the checksummed region of a
// frame. The SDS011 checksum is the plain sum of the payload and device ID
// bytes, truncated to eight bits.
//
// For a reply the region is bytes 2 through 7 (payload and device ID);
// for a query it is bytes 2 through 16 (subcommand, payload and target ID).
// Head, tail, command ID and the checksum byte itself are excluded.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}
