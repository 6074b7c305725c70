// Package rqlog provides the leveled logger the rest of this module
// uses to report codec-level events (compile failures from rank
// deficiency, symbol-id capacity overflow) without requiring every caller to
// plumb a *log.Logger through by hand.
//
// Grounded on the WireGuard-wireguard-go teacher's device/logger.go,
// generalized from its three fixed levels tied to VPN handshake
// tracing to the smaller set this codec needs.
package rqlog

import (
	"io"
	"log"
	"os"
)

const (
	LevelSilent = iota
	LevelError
	LevelInfo
	LevelDebug
)

var _ Logger = &StdLogger{}

// Logger is the logging surface rqcodec calls through.
type Logger interface {
	Debug(v ...interface{})
	Debugf(f string, v ...interface{})
	Info(v ...interface{})
	Infof(f string, v ...interface{})
	Error(v ...interface{})
	Errorf(f string, v ...interface{})
}

// StdLogger is a Logger backed by three stdlib *log.Logger instances,
// one per level, each discarding output below the configured
// threshold.
type StdLogger struct {
	debug *log.Logger
	info  *log.Logger
	err   *log.Logger
}

// New creates a StdLogger writing to os.Stdout at the given level,
// with prepend inserted between the level tag and the message (useful
// to distinguish multiple codec instances in one process).
func New(level int, prepend string) *StdLogger {
	output := os.Stdout

	logErr, logInfo, logDebug := func() (io.Writer, io.Writer, io.Writer) {
		if level >= LevelDebug {
			return output, output, output
		}
		if level >= LevelInfo {
			return output, output, io.Discard
		}
		if level >= LevelError {
			return output, io.Discard, io.Discard
		}
		return io.Discard, io.Discard, io.Discard
	}()

	return &StdLogger{
		debug: log.New(logDebug, "DEBUG: "+prepend, log.Ldate|log.Ltime),
		info:  log.New(logInfo, "INFO: "+prepend, log.Ldate|log.Ltime),
		err:   log.New(logErr, "ERROR: "+prepend, log.Ldate|log.Ltime),
	}
}

func (l *StdLogger) Debug(v ...interface{})            { l.debug.Println(v...) }
func (l *StdLogger) Debugf(f string, v ...interface{}) { l.debug.Printf(f, v...) }
func (l *StdLogger) Info(v ...interface{})             { l.info.Println(v...) }
func (l *StdLogger) Infof(f string, v ...interface{})  { l.info.Printf(f, v...) }
func (l *StdLogger) Error(v ...interface{})            { l.err.Println(v...) }
func (l *StdLogger) Errorf(f string, v ...interface{}) { l.err.Printf(f, v...) }

// Discard is a Logger that drops everything; used as the default when
// a caller does not want logging.
var Discard Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debug(v ...interface{})            {}
func (discardLogger) Debugf(f string, v ...interface{}) {}
func (discardLogger) Info(v ...interface{})             {}
func (discardLogger) Infof(f string, v ...interface{})  {}
func (discardLogger) Error(v ...interface{})            {}
func (discardLogger) Errorf(f string, v ...interface{}) {}
