package protocol

import "fmt"

// QueryMode distinguishes reading a setting from writing it.
type QueryMode uint8

const (
	// QueryModeQuery reads the current setting without changing it
	QueryModeQuery QueryMode = 0

	// QueryModeSet writes a new setting to the sensor
	QueryModeSet QueryMode = 1
)

// String returns the mode name for logging.
func (q QueryMode) String() string {
	switch q {
	case QueryModeQuery:
		return "query"
	case QueryModeSet:
		return "set"
	default:
		return fmt.Sprintf("QueryMode(%d)", uint8(q))
	}
}

// ReportingMode selects how the sensor delivers measurements.
type ReportingMode uint8

const (
	// ReportingModeActive makes the sensor push measurements on its own
	ReportingModeActive ReportingMode = 0

	// ReportingModeQuery makes the sensor answer only when asked
	ReportingModeQuery ReportingMode = 1
)

// String returns the mode name for logging.
func (r ReportingMode) String() string {
	switch r {
	case ReportingModeActive:
		return "active"
	case ReportingModeQuery:
		return "query"
	default:
		return fmt.Sprintf("ReportingMode(%d)", uint8(r))
	}
}

// SleepMode selects between the powered-down and measuring states.
type SleepMode uint8

const (
	// SleepModeSleep powers down the fan and laser
	SleepModeSleep SleepMode = 0

	// SleepModeWork powers the sensor up for measuring
	SleepModeWork SleepMode = 1
)

// String returns the mode name for logging.
func (s SleepMode) String() string {
	switch s {
	case SleepModeSleep:
		return "sleep"
	case SleepModeWork:
		return "work"
	default:
		return fmt.Sprintf("SleepMode(%d)", uint8(s))
	}
}

// Kind is the operation-specific content of a message. The concrete kinds
// are Measurement, Reporting, Sleep, WorkingPeriod, FirmwareVersion and
// NewDeviceID; no other implementations exist.
type Kind interface {
	// populateQuery writes the kind's subcommand and payload bytes into
	// an otherwise zeroed query frame.
	populateQuery(frame []byte)
}

// Message is a fully decoded reply frame: the operation kind plus the ID of
// the sensor it came from.
type Message struct {
	// Kind is the decoded operation content
	Kind Kind

	// DeviceID identifies the responding sensor
	DeviceID uint16
}

// Measurement is a single fine dust reading. Both values are reported in
// tenths of µg/m³, so a PM25 of 1236 means 123.6 µg/m³.
//
// Used as a query kind it requests one measurement; the sensor answers with
// a measurement reply.
type Measurement struct {
	// PM25 is the PM2.5 concentration in tenths of µg/m³
	PM25 uint16

	// PM10 is the PM10 concentration in tenths of µg/m³
	PM10 uint16
}

// PM25Micrograms returns the PM2.5 concentration in µg/m³.
func (m Measurement) PM25Micrograms() float64 {
	return float64(m.PM25) / 10
}

// PM10Micrograms returns the PM10 concentration in µg/m³.
func (m Measurement) PM10Micrograms() float64 {
	return float64(m.PM10) / 10
}

// String formats the measurement in µg/m³.
func (m Measurement) String() string {
	return fmt.Sprintf("PM2.5: %.1f µg/m³, PM10: %.1f µg/m³",
		m.PM25Micrograms(), m.PM10Micrograms())
}

// Reporting queries or sets the data reporting mode.
type Reporting struct {
	// Query selects between reading and writing the mode
	Query QueryMode

	// Mode is the reporting mode read from or written to the sensor
	Mode ReportingMode
}

// Sleep queries or sets the sleep/work state.
type Sleep struct {
	// Query selects between reading and writing the state
	Query QueryMode

	// Mode is the state read from or written to the sensor
	Mode SleepMode
}

// WorkingPeriod queries or sets the periodic working period.
type WorkingPeriod struct {
	// Query selects between reading and writing the period
	Query QueryMode

	// Minutes is the period length. Zero selects continuous reporting;
	// 1 through MaxWorkingPeriod select one measurement per period with
	// the fan powered down in between.
	Minutes uint8
}

// FirmwareVersion is the sensor firmware release date.
type FirmwareVersion struct {
	// Year is the release year counted from 2000
	Year uint8

	// Month is the release month
	Month uint8

	// Day is the release day
	Day uint8
}

// String formats the version as a dotted date, e.g. "2015.07.10".
func (v FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%02d.%02d", 2000+uint16(v.Year), v.Month, v.Day)
}

// NewDeviceID assigns a new device ID to the sensor. The acknowledgement
// reply carries the assigned ID in its device ID field.
//
// IDs containing an 0xFF byte are reserved for broadcast addressing and
// must not be assigned.
type NewDeviceID struct {
	// ID is the device ID to assign
	ID uint16
}
