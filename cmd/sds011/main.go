// Command sds011 reads fine dust measurements from an SDS011 sensor
// attached to a serial port.
//
// One-shot by default: initialize the sensor, print its ID and firmware
// version, take a single measurement and leave the sensor sleeping.
// With -interval the sensor is polled repeatedly; with -periodic the
// sensor is switched to self-timed reporting and the pushed measurements
// are streamed until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"

	"github.com/kenohassler/go-sds011/protocol"
	"github.com/kenohassler/go-sds011/sds011"
)

// Config holds application configuration
type Config struct {
	List     bool
	Port     string
	Interval uint
	Periodic int
	Debug    bool
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.BoolVar(&cfg.List, "list", false, "List available serial ports and exit")
	flag.StringVar(&cfg.Port, "port", "", "Serial port of the sensor (auto-detected if exactly one exists)")
	flag.UintVar(&cfg.Interval, "interval", 0, "Poll the sensor every n minutes, 0 for one-shot")
	flag.IntVar(&cfg.Periodic, "periodic", -1, "Switch the sensor to self-timed reporting every m minutes (0-30) and stream the results")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	flag.Parse()

	if cfg.Periodic > protocol.MaxWorkingPeriod {
		fmt.Printf("Error: -periodic must be between 0 and %d minutes\n", protocol.MaxWorkingPeriod)
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

// pickPort resolves the serial port to use. Without -port it auto-detects,
// but only when the choice is unambiguous.
func pickPort(cfg *Config) (string, error) {
	if cfg.Port != "" {
		return cfg.Port, nil
	}

	ports, err := serial.GetPortsList()
	if err != nil {
		return "", fmt.Errorf("list serial ports: %w", err)
	}

	if len(ports) == 0 {
		return "", errors.New("no serial ports available")
	}
	if len(ports) > 1 {
		return "", fmt.Errorf("several serial ports available, pick one with -port: %v", ports)
	}

	return ports[0], nil
}

// openPort opens the serial port at the fixed 9600 8N1 the sensor speaks.
func openPort(name string) (serial.Port, error) {
	return serial.Open(name, &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

func listPorts() error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return fmt.Errorf("list serial ports: %w", err)
	}

	if len(ports) == 0 {
		fmt.Println("No serial ports available.")
		return nil
	}

	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

func main() {
	cfg := parseFlags()

	logger := logrus.New()
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if cfg.List {
		if err := listPorts(); err != nil {
			logger.Fatal(err)
		}
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *Config, logger *logrus.Logger) error {
	name, err := pickPort(cfg)
	if err != nil {
		return err
	}

	port, err := openPort(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	delayer := sds011.TimerDelayer{}

	polling, err := sds011.New(port, sds011.WithLogger(logger)).Init(ctx, delayer)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("init: %w", err)
	}

	fmt.Printf("SDS011, ID: 0x%04X, Firmware: %s\n", polling.ID(), polling.Version())

	if cfg.Periodic >= 0 {
		return streamPeriodic(ctx, port, polling, delayer, uint8(cfg.Periodic), logger)
	}

	return poll(ctx, polling, delayer, cfg.Interval)
}

// poll takes one measurement, then keeps measuring every interval minutes
// until interrupted. The wait is shortened by the sensor's spin-up time so
// measurements land on the requested schedule.
func poll(ctx context.Context, polling *sds011.PollingSensor, delayer sds011.Delayer, interval uint) error {
	for {
		m, err := polling.Measure(ctx, delayer)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("measure: %w", err)
		}
		fmt.Println(m)

		if interval == 0 {
			return nil
		}

		wait := time.Duration(interval)*time.Minute - 30*time.Second
		if wait < 0 {
			wait = 0
		}
		if err := delayer.Delay(ctx, wait); err != nil {
			return nil
		}
	}
}

// streamPeriodic hands the measurement schedule to the sensor and prints
// every pushed reading. The port is closed when the context ends so the
// blocking read unblocks.
func streamPeriodic(ctx context.Context, port serial.Port, polling *sds011.PollingSensor, delayer sds011.Delayer, minutes uint8, logger *logrus.Logger) error {
	periodic, err := polling.MakePeriodic(ctx, delayer, minutes)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("make periodic: %w", err)
	}

	logger.Infof("streaming measurements every %d minutes, interrupt to stop", minutes)

	go func() {
		<-ctx.Done()
		port.Close()
	}()

	for {
		m, err := periodic.Measure(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("measure: %w", err)
		}
		fmt.Println(m)
	}
}
