// Package sds011 provides a high-level driver for the Nova Fitness SDS011
// laser dust sensor.
//
// # Overview
//
// The sensor measures PM2.5 and PM10 fine dust concentrations. This package
// sequences the wake/query/sleep exchanges the device needs and encodes its
// lifecycle in the type system:
//
//	UninitializedSensor --Init--> PollingSensor --MakePeriodic--> PeriodicSensor
//
// A PollingSensor sleeps between measurements and is queried on demand; a
// PeriodicSensor measures on its own schedule and pushes the results. The
// transition to periodic is one-way; reclaiming a periodic sensor takes a
// fresh New/Init session. Transition methods consume their receiver: after
// Init or MakePeriodic returns, use only the returned value.
//
// # Basic Usage
//
//	port, err := serial.Open("/dev/ttyUSB0", &serial.Mode{BaudRate: 9600})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dev := sds011.New(port)
//
//	sensor, err := dev.Init(context.Background(), sds011.SleepDelayer{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("ID 0x%04X, firmware %s\n", sensor.ID(), sensor.Version())
//
//	m, err := sensor.Measure(context.Background(), sds011.SleepDelayer{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m) // PM2.5: 12.3 µg/m³, PM10: 26.1 µg/m³
//
// # Delays and Cancellation
//
// The sensor needs real time between steps: a settle pause after sleeping
// (default 500 ms) and a 30 second fan spin-up before a trustworthy
// reading. Operations take a Delayer for those pauses. SleepDelayer blocks;
// TimerDelayer aborts the pause when the context is cancelled:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	m, err := sensor.Measure(ctx, sds011.TimerDelayer{})
//
// The context is also checked between protocol steps. A reply read that has
// already started is not interruptible, and an operation aborted
// mid-sequence leaves the physical device in an indeterminate state. Treat
// the driver as spent and start over with New.
//
// # Configuration
//
//	dev := sds011.New(port,
//	    sds011.WithSettleDelay(time.Second),
//	    sds011.WithSpinUpDelay(15*time.Second),
//	    sds011.WithLogger(logrus.StandardLogger()),
//	)
//
// # Error Handling
//
// The package returns structured error types, matchable with errors.As:
//   - WriteError / ReadError: the transport failed (wrapped cause inside)
//   - ShortWriteError / ShortReadError: a frame was cut off
//   - UnexpectedReplyError: the sensor answered with the wrong message kind
//   - OperationFailedError: the sensor acknowledged without confirming
//   - InvalidParameterError: a caller value out of protocol range, no I/O
//
// Decode problems surface as the protocol package's error types.
//
// # Hardware Independence
//
// The driver talks to any io.ReadWriter. The binaries in this repository
// use go.bug.st/serial ports; the tests use scripted in-memory transports.
// The device end is a 9600 8N1 serial line, usually behind a USB adapter.
package sds011
