package search

import "datascout/internal/log"

// EventNotifier receives diagnostic events from the search tool. "Not found"
// is never reported here as an error; the tool only raises Error for hard
// precondition failures like a missing source directory.
type EventNotifier interface {
	Debug(msg string)
	Status(msg string)
	Warning(msg string)
	Error(msg string, err error)
}

// LogNotifier forwards events to the application logger. It is the default
// notifier when callers don't inject their own.
type LogNotifier struct{}

func (LogNotifier) Debug(msg string) { log.Debugf("%s", msg) }

func (LogNotifier) Status(msg string) { log.Info("%s", msg) }

func (LogNotifier) Warning(msg string) { log.Warn("%s", msg) }

func (LogNotifier) Error(msg string, err error) {
	if err != nil {
		log.Error("%s: %v", msg, err)
		return
	}
	log.Error("%s", msg)
}
