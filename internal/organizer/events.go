package organizer

// Event is one message emitted by the run worker. Each event is emitted
// exactly once, in processing order.
type Event interface {
	isEvent()
}

// Progress reports how many enumerated files have been fully handled.
type Progress struct {
	Processed int
	Total     int
}

// Log is the human-readable outcome of one file (success or failure).
type Log struct {
	Message string
	Err     error
}

// Done terminates the stream with the distinct output folders touched
// during the run, sorted. An empty set means nothing was organized.
type Done struct {
	Folders []string
}

func (Progress) isEvent() {}
func (Log) isEvent()      {}
func (Done) isEvent()     {}
