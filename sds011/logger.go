package sds011

// Logger is an optional logging interface the driver reports its protocol
// steps through. The printf-style methods match what the popular logging
// frameworks expose, so a *logrus.Logger or *logrus.Entry can be passed in
// directly.
//
// Example with the standard log package:
//
//	type StdLogger struct{}
//	func (StdLogger) Debugf(format string, args ...interface{}) { log.Printf(format, args...) }
//	func (StdLogger) Infof(format string, args ...interface{})  { log.Printf(format, args...) }
//	func (StdLogger) Errorf(format string, args ...interface{}) { log.Printf(format, args...) }
//
//	dev := sds011.New(port, sds011.WithLogger(StdLogger{}))
type Logger interface {
	// Debugf logs a debug message
	Debugf(format string, args ...interface{})

	// Infof logs an info message
	Infof(format string, args ...interface{})

	// Errorf logs an error message
	Errorf(format string, args ...interface{})
}
