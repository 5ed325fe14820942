package driver

import "time"

// Stage describes a step of checking one file.
type Stage string

const (
	// StageLoad reads and normalises the file.
	StageLoad Stage = "load"
	// StageCheck runs the rules.
	StageCheck Stage = "check"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is currently being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file is done.
	StatusDone Status = "done"
	// StatusError indicates the file could not be checked.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
// Errors and Warnings are set on StatusDone.
type Event struct {
	File     string
	Stage    Stage
	Status   Status
	Err      error
	Elapsed  time.Duration
	Errors   int
	Warnings int
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; CheckDir reports from several workers.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}

func emitQueued(sink ProgressSink, files []string) {
	for _, f := range files {
		emit(sink, Event{File: f, Stage: StageLoad, Status: StatusQueued})
	}
}
