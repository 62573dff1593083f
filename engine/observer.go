package engine

import "github.com/sirupsen/logrus"

// Observer is notified of refinement progress
// Calls happen on the controller goroutine and must not block
type Observer interface {
	QualityChanged(from, to int)
	PhaseChanged(from, to Phase)
}

// LogObserver writes refinement progress to a logger
type LogObserver struct {
	Log logrus.FieldLogger
}

// QualityChanged implements Observer
func (o LogObserver) QualityChanged(from, to int) {
	o.Log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("quality changed")
}

// PhaseChanged implements Observer
func (o LogObserver) PhaseChanged(from, to Phase) {
	o.Log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("phase changed")
}
