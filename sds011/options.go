package sds011

import "time"

// Config holds the driver configuration.
type Config struct {
	// SettleDelay is the wait before the sleeping sensor is addressed,
	// giving it time to come out of its powered-down state
	SettleDelay time.Duration

	// SpinUpDelay is the wait between waking the fan and taking the
	// measurement that is returned, so the airflow is stable. The
	// manufacturer recommends 30 seconds
	SpinUpDelay time.Duration

	// Logger receives debug and info messages (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		SettleDelay: 500 * time.Millisecond,
		SpinUpDelay: 30 * time.Second,
	}
}

// Option is a functional option for configuring the driver.
type Option func(*Config)

// WithSettleDelay sets the wait before a sleeping sensor is addressed.
// Default is 500 ms.
//
// Example:
//
//	dev := sds011.New(port, sds011.WithSettleDelay(time.Second))
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SettleDelay = d
		}
	}
}

// WithSpinUpDelay sets the wait between waking the fan and measuring.
// Default is 30 s. Shorter values speed up polling at the cost of reading
// air that has not fully cycled through the chamber.
//
// Example:
//
//	dev := sds011.New(port, sds011.WithSpinUpDelay(10*time.Second))
func WithSpinUpDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SpinUpDelay = d
		}
	}
}

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev := sds011.New(port, sds011.WithLogger(logrus.StandardLogger()))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
