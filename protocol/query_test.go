package protocol

import (
	"bytes"
	"testing"
)

func TestBuildQueryMeasurementBroadcast(t *testing.T) {
	want := []byte{
		0xAA, 0xB4, 0x04,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0x02, 0xAB,
	}

	frame := BuildQuery(Measurement{}, BroadcastID)
	if !bytes.Equal(frame, want) {
		t.Errorf("BuildQuery() = % X, want % X", frame, want)
	}
}

func TestBuildQueryPayloads(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		subcommand byte
		flag       byte
		value      byte
	}{
		{
			name:       "measurement",
			kind:       Measurement{},
			subcommand: SubMeasurement,
		},
		{
			name:       "query reporting mode",
			kind:       Reporting{Query: QueryModeQuery},
			subcommand: SubReporting,
		},
		{
			name:       "set reporting mode to query",
			kind:       Reporting{Query: QueryModeSet, Mode: ReportingModeQuery},
			subcommand: SubReporting,
			flag:       1,
			value:      1,
		},
		{
			name:       "set sleep",
			kind:       Sleep{Query: QueryModeSet, Mode: SleepModeSleep},
			subcommand: SubSleep,
			flag:       1,
		},
		{
			name:       "set work",
			kind:       Sleep{Query: QueryModeSet, Mode: SleepModeWork},
			subcommand: SubSleep,
			flag:       1,
			value:      1,
		},
		{
			name:       "set working period",
			kind:       WorkingPeriod{Query: QueryModeSet, Minutes: 5},
			subcommand: SubWorkingPeriod,
			flag:       1,
			value:      5,
		},
		{
			name:       "query working period",
			kind:       WorkingPeriod{Query: QueryModeQuery},
			subcommand: SubWorkingPeriod,
		},
		{
			name:       "firmware version",
			kind:       FirmwareVersion{},
			subcommand: SubFirmwareVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildQuery(tt.kind, BroadcastID)

			if len(frame) != QuerySize {
				t.Fatalf("frame length = %d, want %d", len(frame), QuerySize)
			}

			if frame[posSubcommand] != tt.subcommand {
				t.Errorf("SUB = %d, want %d", frame[posSubcommand], tt.subcommand)
			}

			if frame[posFlag] != tt.flag {
				t.Errorf("FLAG = %d, want %d", frame[posFlag], tt.flag)
			}

			if frame[posValue] != tt.value {
				t.Errorf("VALUE = %d, want %d", frame[posValue], tt.value)
			}
		})
	}
}

func TestBuildQueryNewDeviceID(t *testing.T) {
	frame := BuildQuery(NewDeviceID{ID: 0xA160}, BroadcastID)

	if frame[posSubcommand] != SubNewDeviceID {
		t.Errorf("SUB = %d, want %d", frame[posSubcommand], SubNewDeviceID)
	}

	if frame[queryNewIDPos] != 0xA1 || frame[queryNewIDPos+1] != 0x60 {
		t.Errorf("new ID bytes = 0x%02X 0x%02X, want 0xA1 0x60",
			frame[queryNewIDPos], frame[queryNewIDPos+1])
	}
}

func TestBuildQueryTargetAddressing(t *testing.T) {
	tests := []struct {
		name   string
		target uint16
		high   byte
		low    byte
	}{
		{name: "broadcast", target: BroadcastID, high: 0xFF, low: 0xFF},
		{name: "specific sensor", target: 0xA160, high: 0xA1, low: 0x60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildQuery(Measurement{}, tt.target)

			if frame[queryTargetIDPos] != tt.high || frame[queryTargetIDPos+1] != tt.low {
				t.Errorf("target ID bytes = 0x%02X 0x%02X, want 0x%02X 0x%02X",
					frame[queryTargetIDPos], frame[queryTargetIDPos+1], tt.high, tt.low)
			}
		})
	}
}

// Every query must carry the frame markers, the query command ID and a
// checksum matching its own payload, whatever the kind.
func TestBuildQueryFraming(t *testing.T) {
	kinds := []struct {
		name string
		kind Kind
	}{
		{name: "measurement", kind: Measurement{}},
		{name: "reporting", kind: Reporting{Query: QueryModeSet, Mode: ReportingModeActive}},
		{name: "sleep", kind: Sleep{Query: QueryModeSet, Mode: SleepModeWork}},
		{name: "working period", kind: WorkingPeriod{Query: QueryModeSet, Minutes: 30}},
		{name: "firmware version", kind: FirmwareVersion{}},
		{name: "new device ID", kind: NewDeviceID{ID: 0x1234}},
	}

	for _, tt := range kinds {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildQuery(tt.kind, BroadcastID)

			if frame[0] != FrameHead {
				t.Errorf("HEAD = 0x%02X, want 0x%02X", frame[0], FrameHead)
			}

			if frame[posCommand] != CmdQuery {
				t.Errorf("CMD = 0x%02X, want 0x%02X", frame[posCommand], CmdQuery)
			}

			if frame[queryTailPos] != FrameTail {
				t.Errorf("TAIL = 0x%02X, want 0x%02X", frame[queryTailPos], FrameTail)
			}

			checksum := Checksum(frame[queryPayloadStart:queryChecksumPos])
			if frame[queryChecksumPos] != checksum {
				t.Errorf("CHECKSUM = 0x%02X, want 0x%02X", frame[queryChecksumPos], checksum)
			}
		})
	}
}

func BenchmarkBuildQuery(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BuildQuery(Measurement{}, BroadcastID)
	}
}
