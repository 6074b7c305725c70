package rqlog

import "testing"

func TestNewDoesNotPanicAtAnyLevel(t *testing.T) {
	for _, lvl := range []int{LevelSilent, LevelError, LevelInfo, LevelDebug} {
		l := New(lvl, "test: ")
		l.Debug("debug message")
		l.Info("info message")
		l.Error("error message")
		l.Debugf("formatted %d", 1)
		l.Infof("formatted %d", 2)
		l.Errorf("formatted %d", 3)
	}
}

func TestDiscardImplementsLogger(t *testing.T) {
	var l Logger = Discard
	l.Debug("ignored")
	l.Error("ignored")
}
