// Command sds011-exporter polls an SDS011 fine dust sensor and publishes
// the readings as Prometheus metrics.
//
// The sensor is woken for one measurement per interval and sleeps in
// between, extending the laser diode's lifetime. Metrics are served on
// /metrics (by default :9155):
//
//	sds011_pm25_micrograms_per_cubic_meter
//	sds011_pm10_micrograms_per_cubic_meter
//	sds011_polls_total
//	sds011_poll_errors_total
//	sds011_last_success_timestamp_seconds
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
	"golang.org/x/sync/errgroup"

	"github.com/kenohassler/go-sds011/sds011"
)

var (
	pm25Gauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sds011_pm25_micrograms_per_cubic_meter",
		Help: "Last PM2.5 reading.",
	})

	pm10Gauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sds011_pm10_micrograms_per_cubic_meter",
		Help: "Last PM10 reading.",
	})

	pollsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sds011_polls_total",
		Help: "Number of measurement attempts.",
	})

	pollErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sds011_poll_errors_total",
		Help: "Number of failed measurement attempts.",
	})

	lastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sds011_last_success_timestamp_seconds",
		Help: "Unix time of the last successful poll.",
	})
)

// Config holds application configuration
type Config struct {
	Port     string
	Listen   string
	Interval uint
	Debug    bool
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.Port, "port", "", "Serial port of the sensor (required)")
	flag.StringVar(&cfg.Listen, "listen", ":9155", "Address to serve /metrics on")
	flag.UintVar(&cfg.Interval, "interval", 5, "Minutes between polls")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	flag.Parse()

	if cfg.Port == "" {
		fmt.Println("Error: -port flag is required")
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

func main() {
	cfg := parseFlags()

	logger := logrus.New()
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	prometheus.MustRegister(pm25Gauge, pm10Gauge, pollsTotal, pollErrors, lastSuccess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *Config, logger *logrus.Logger) error {
	port, err := serial.Open(cfg.Port, &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Port, err)
	}
	defer port.Close()

	delayer := sds011.TimerDelayer{}

	polling, err := sds011.New(port, sds011.WithLogger(logger)).Init(ctx, delayer)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("init: %w", err)
	}
	logger.Infof("sensor ready: ID 0x%04X, firmware %s", polling.ID(), polling.Version())

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{Addr: cfg.Listen, Handler: mux}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Infof("serving metrics on %s", cfg.Listen)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve metrics: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		// Unblock the poller's serial read, then drain the HTTP server.
		port.Close()
		return srv.Shutdown(context.Background())
	})

	group.Go(func() error {
		return pollLoop(ctx, port, polling, delayer, cfg, logger)
	})

	return group.Wait()
}

// pollLoop measures in a loop, refreshing the gauges. A failed exchange
// leaves the reply stream in an unknown state, so the sensor is
// re-initialized before the next attempt.
func pollLoop(ctx context.Context, port serial.Port, polling *sds011.PollingSensor, delayer sds011.Delayer, cfg *Config, logger *logrus.Logger) error {
	for {
		m, err := polling.Measure(ctx, delayer)
		if ctx.Err() != nil {
			return nil
		}

		pollsTotal.Inc()
		if err != nil {
			pollErrors.Inc()
			logger.Errorf("poll failed: %v", err)

			polling, err = sds011.New(port, sds011.WithLogger(logger)).Init(ctx, delayer)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("re-initialize after failed poll: %w", err)
			}
		} else {
			pm25Gauge.Set(m.PM25Micrograms())
			pm10Gauge.Set(m.PM10Micrograms())
			lastSuccess.SetToCurrentTime()
			logger.Debugf("%v", m)
		}

		// The next measurement spends the spin-up time before it reads,
		// so wait that much less to stay on schedule.
		wait := time.Duration(cfg.Interval)*time.Minute - 30*time.Second
		if wait < 0 {
			wait = 0
		}
		if err := delayer.Delay(ctx, wait); err != nil {
			return nil
		}
	}
}
