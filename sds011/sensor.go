package sds011

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kenohassler/go-sds011/protocol"
)

// sensor is the shared core behind every phase type. It owns the transport
// and the configuration and carries the device ID and firmware version once
// they are learned during initialization.
type sensor struct {
	device io.ReadWriter
	config Config

	id      uint16
	version protocol.FirmwareVersion
}

// UninitializedSensor is a driver for a sensor in an unknown state. Init
// brings the device into a defined state and unlocks the measuring API.
type UninitializedSensor struct {
	core sensor
}

// PollingSensor is a driver for a sensor in query reporting mode. The
// sensor sleeps between measurements and answers only when asked.
type PollingSensor struct {
	core sensor
}

// PeriodicSensor is a driver for a sensor that measures on its own
// schedule and pushes the results unsolicited. There is no way back to the
// polling phase; start over with New and Init to leave it.
type PeriodicSensor struct {
	core sensor
}

// New creates a driver for a sensor reachable through the given transport.
// No I/O is performed; call Init to talk to the device.
//
// The transport must be a raw byte stream to a single sensor, typically a
// serial port opened at 9600 8N1.
//
// Example:
//
//	port, _ := serial.Open("/dev/ttyUSB0", &serial.Mode{BaudRate: 9600})
//	dev := sds011.New(port, sds011.WithLogger(logger))
func New(device io.ReadWriter, opts ...Option) *UninitializedSensor {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &UninitializedSensor{core: sensor{
		device: device,
		config: cfg,
	}}
}

// Init brings the sensor into a defined state:
//  1. Wait the settle delay
//  2. Wake the sensor
//  3. Switch it to query reporting mode
//  4. Read the firmware version, learning the device ID along the way
//  5. Put it back to sleep
//
// On success the returned PollingSensor carries the learned ID and version.
// The receiver must be discarded afterwards whether Init succeeded or not;
// a failed Init leaves the physical device in an indeterminate state that
// only a fresh New/Init session resolves.
//
// A nil delay falls back to blocking waits (SleepDelayer).
func (u *UninitializedSensor) Init(ctx context.Context, delay Delayer) (*PollingSensor, error) {
	s := &u.core
	if delay == nil {
		delay = SleepDelayer{}
	}

	if err := s.settle(ctx, delay); err != nil {
		return nil, err
	}

	if err := s.wake(); err != nil {
		return nil, fmt.Errorf("wake: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	if err := s.setReportingMode(protocol.ReportingModeQuery); err != nil {
		return nil, fmt.Errorf("set reporting mode: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	if err := s.firmware(); err != nil {
		return nil, fmt.Errorf("read firmware version: %w", err)
	}

	if err := s.sleep(); err != nil {
		return nil, fmt.Errorf("sleep: %w", err)
	}

	s.logInfof("sensor initialized: ID 0x%04X, firmware %s", s.id, s.version)

	return &PollingSensor{core: u.core}, nil
}

// Measure wakes the sensor, takes one measurement and puts the sensor back
// to sleep:
//  1. Wait the settle delay
//  2. Wake the sensor
//  3. Drain the stale reading the sensor buffered before it slept
//  4. Wait the spin-up delay so the fan reaches stable airflow
//  5. Query the real measurement
//  6. Put the sensor to sleep
//
// A failure propagates immediately; in particular, no sleep command is sent
// after a failed exchange, because the reply stream is in an unknown state
// and a fresh New/Init session is required anyway.
//
// A nil delay falls back to blocking waits (SleepDelayer). With the default
// spin-up delay a successful call takes a little over 30 seconds.
func (p *PollingSensor) Measure(ctx context.Context, delay Delayer) (protocol.Measurement, error) {
	s := &p.core
	if delay == nil {
		delay = SleepDelayer{}
	}

	if err := s.settle(ctx, delay); err != nil {
		return protocol.Measurement{}, err
	}

	if err := s.wake(); err != nil {
		return protocol.Measurement{}, fmt.Errorf("wake: %w", err)
	}

	// The sensor answers the first query after waking with a reading taken
	// before it slept. Drain it so the returned value is fresh.
	if _, err := s.readMeasurement(true); err != nil {
		return protocol.Measurement{}, fmt.Errorf("drain stale measurement: %w", err)
	}

	s.logDebugf("spinning up for %v", s.config.SpinUpDelay)
	if err := delay.Delay(ctx, s.config.SpinUpDelay); err != nil {
		return protocol.Measurement{}, err
	}

	m, err := s.readMeasurement(true)
	if err != nil {
		return protocol.Measurement{}, fmt.Errorf("measure: %w", err)
	}

	if err := s.sleep(); err != nil {
		return protocol.Measurement{}, fmt.Errorf("sleep: %w", err)
	}

	s.logDebugf("measured %v", m)

	return m, nil
}

// MakePeriodic switches the sensor to self-timed reporting: it measures
// once per period and pushes the result without being asked. minutes is
// the period length, 1 through 30; zero keeps the sensor measuring
// continuously (roughly one reading per second).
//
// The receiver must be discarded afterwards whether MakePeriodic succeeded
// or not. There is no path back to the polling phase; re-initialize with
// New and Init to reclaim the sensor.
//
// A nil delay falls back to blocking waits (SleepDelayer).
func (p *PollingSensor) MakePeriodic(ctx context.Context, delay Delayer, minutes uint8) (*PeriodicSensor, error) {
	s := &p.core

	if minutes > protocol.MaxWorkingPeriod {
		return nil, &InvalidParameterError{Param: "working period", Value: uint16(minutes)}
	}

	if delay == nil {
		delay = SleepDelayer{}
	}

	if err := s.settle(ctx, delay); err != nil {
		return nil, err
	}

	if err := s.wake(); err != nil {
		return nil, fmt.Errorf("wake: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	if err := s.setWorkingPeriod(minutes); err != nil {
		return nil, fmt.Errorf("set working period: %w", err)
	}

	if err := s.setReportingMode(protocol.ReportingModeActive); err != nil {
		return nil, fmt.Errorf("set reporting mode: %w", err)
	}

	s.logInfof("sensor reporting every %d minutes", minutes)

	return &PeriodicSensor{core: p.core}, nil
}

// SetDeviceID assigns a new device ID and stores it as the learned ID on
// success. IDs with an 0xFF byte are reserved for broadcast addressing and
// rejected before any I/O.
//
// The command is broadcast like every other query, so with several sensors
// on one bus it renames all of them. The sensor is woken for the exchange
// and put back to sleep afterwards.
//
// A nil delay falls back to blocking waits (SleepDelayer).
func (p *PollingSensor) SetDeviceID(ctx context.Context, delay Delayer, id uint16) error {
	s := &p.core

	if byte(id>>8) == 0xFF || byte(id) == 0xFF {
		return &InvalidParameterError{Param: "device ID", Value: id}
	}

	if delay == nil {
		delay = SleepDelayer{}
	}

	if err := s.settle(ctx, delay); err != nil {
		return err
	}

	if err := s.wake(); err != nil {
		return fmt.Errorf("wake: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}

	if err := s.assignID(id); err != nil {
		return fmt.Errorf("set device ID: %w", err)
	}

	if err := s.sleep(); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}

	s.logInfof("device ID changed to 0x%04X", id)

	return nil
}

// ID returns the device ID learned during initialization.
func (p *PollingSensor) ID() uint16 {
	return p.core.id
}

// Version returns the firmware version learned during initialization.
func (p *PollingSensor) Version() protocol.FirmwareVersion {
	return p.core.version
}

// Measure blocks until the sensor pushes the next measurement on its own
// schedule. No query is sent and no wake or sleep management happens; the
// sensor owns the timing.
//
// The read is not interruptible once started. If the stream loses frame
// alignment the decode error is surfaced, not repaired; re-initialize with
// New and Init to recover.
func (p *PeriodicSensor) Measure(ctx context.Context) (protocol.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return protocol.Measurement{}, fmt.Errorf("cancelled: %w", err)
	}

	return p.core.readMeasurement(false)
}

// ID returns the device ID learned during initialization.
func (p *PeriodicSensor) ID() uint16 {
	return p.core.id
}

// Version returns the firmware version learned during initialization.
func (p *PeriodicSensor) Version() protocol.FirmwareVersion {
	return p.core.version
}

// settle waits the configured settle delay before the sensor is addressed.
func (s *sensor) settle(ctx context.Context, delay Delayer) error {
	s.logDebugf("settling for %v", s.config.SettleDelay)
	return delay.Delay(ctx, s.config.SettleDelay)
}

// send builds a broadcast query for the kind and writes it in one call.
func (s *sensor) send(kind protocol.Kind) error {
	frame := protocol.BuildQuery(kind, protocol.BroadcastID)

	n, err := s.device.Write(frame)
	if err != nil {
		return &WriteError{Err: err}
	}
	if n < len(frame) {
		return &ShortWriteError{Wrote: n}
	}

	return nil
}

// receive reads exactly one reply frame and decodes it.
func (s *sensor) receive() (protocol.Message, error) {
	buf := make([]byte, protocol.ReplySize)

	n, err := io.ReadFull(s.device, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return protocol.Message{}, &ShortReadError{Read: n}
	}
	if err != nil {
		return protocol.Message{}, &ReadError{Err: err}
	}

	return protocol.ParseReply(buf)
}

// exchange performs one query/reply round trip.
func (s *sensor) exchange(kind protocol.Kind) (protocol.Message, error) {
	if err := s.send(kind); err != nil {
		return protocol.Message{}, err
	}
	return s.receive()
}

// readMeasurement reads one measurement reply, optionally sending the
// query first. Periodic mode pushes frames without a query.
func (s *sensor) readMeasurement(sendQuery bool) (protocol.Measurement, error) {
	if sendQuery {
		if err := s.send(protocol.Measurement{}); err != nil {
			return protocol.Measurement{}, err
		}
	}

	msg, err := s.receive()
	if err != nil {
		return protocol.Measurement{}, err
	}

	m, ok := msg.Kind.(protocol.Measurement)
	if !ok {
		return protocol.Measurement{}, &UnexpectedReplyError{Want: protocol.Measurement{}, Got: msg.Kind}
	}

	return m, nil
}

// setSleepMode sets the sleep/work state and verifies the acknowledgement.
func (s *sensor) setSleepMode(mode protocol.SleepMode) error {
	want := protocol.Sleep{Query: protocol.QueryModeSet, Mode: mode}

	msg, err := s.exchange(want)
	if err != nil {
		return err
	}

	got, ok := msg.Kind.(protocol.Sleep)
	if !ok {
		return &UnexpectedReplyError{Want: want, Got: msg.Kind}
	}
	if got.Mode != mode {
		return &OperationFailedError{Op: "sleep mode"}
	}

	s.logDebugf("sleep mode set to %v", mode)

	return nil
}

func (s *sensor) wake() error {
	return s.setSleepMode(protocol.SleepModeWork)
}

func (s *sensor) sleep() error {
	return s.setSleepMode(protocol.SleepModeSleep)
}

// setReportingMode sets the reporting mode and verifies the
// acknowledgement.
func (s *sensor) setReportingMode(mode protocol.ReportingMode) error {
	want := protocol.Reporting{Query: protocol.QueryModeSet, Mode: mode}

	msg, err := s.exchange(want)
	if err != nil {
		return err
	}

	got, ok := msg.Kind.(protocol.Reporting)
	if !ok {
		return &UnexpectedReplyError{Want: want, Got: msg.Kind}
	}
	if got.Mode != mode {
		return &OperationFailedError{Op: "reporting mode"}
	}

	s.logDebugf("reporting mode set to %v", mode)

	return nil
}

// setWorkingPeriod sets the period and verifies the acknowledgement.
func (s *sensor) setWorkingPeriod(minutes uint8) error {
	want := protocol.WorkingPeriod{Query: protocol.QueryModeSet, Minutes: minutes}

	msg, err := s.exchange(want)
	if err != nil {
		return err
	}

	got, ok := msg.Kind.(protocol.WorkingPeriod)
	if !ok {
		return &UnexpectedReplyError{Want: want, Got: msg.Kind}
	}
	if got.Minutes != minutes {
		return &OperationFailedError{Op: "working period"}
	}

	return nil
}

// firmware queries the firmware version and learns the device ID from the
// reply.
func (s *sensor) firmware() error {
	want := protocol.FirmwareVersion{}

	msg, err := s.exchange(want)
	if err != nil {
		return err
	}

	got, ok := msg.Kind.(protocol.FirmwareVersion)
	if !ok {
		return &UnexpectedReplyError{Want: want, Got: msg.Kind}
	}

	s.version = got
	s.id = msg.DeviceID

	return nil
}

// assignID sends the new device ID and verifies the acknowledgement echoes
// it back.
func (s *sensor) assignID(id uint16) error {
	want := protocol.NewDeviceID{ID: id}

	msg, err := s.exchange(want)
	if err != nil {
		return err
	}

	got, ok := msg.Kind.(protocol.NewDeviceID)
	if !ok {
		return &UnexpectedReplyError{Want: want, Got: msg.Kind}
	}
	if got.ID != id {
		return &OperationFailedError{Op: "device ID"}
	}

	s.id = id

	return nil
}

// logDebugf logs a debug message if a logger is configured.
func (s *sensor) logDebugf(format string, args ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debugf(format, args...)
	}
}

// logInfof logs an info message if a logger is configured.
func (s *sensor) logInfof(format string, args ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Infof(format, args...)
	}
}
