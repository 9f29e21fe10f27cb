package models

import "time"

type EventKind string

const (
	EventProgress  EventKind = "progress"
	EventLog       EventKind = "log"
	EventCompleted EventKind = "completed"
)

type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Event is the only thing a running transfer sends back to its front-end.
type Event struct {
	Kind    EventKind        `json:"kind"`
	Time    time.Time        `json:"time"`
	Current int              `json:"current,omitempty"`
	Total   int              `json:"total,omitempty"`
	File    string           `json:"file,omitempty"`
	Level   LogLevel         `json:"level,omitempty"`
	Message string           `json:"message,omitempty"`
	Outcome *TransferOutcome `json:"outcome,omitempty"`
}

func ProgressEvent(current, total int, file string) Event {
	return Event{Kind: EventProgress, Time: time.Now(), Current: current, Total: total, File: file}
}

func LogEvent(level LogLevel, message string) Event {
	return Event{Kind: EventLog, Time: time.Now(), Level: level, Message: message}
}

func CompletedEvent(outcome *TransferOutcome) Event {
	return Event{Kind: EventCompleted, Time: time.Now(), Outcome: outcome}
}
