package systems

import (
	"github.com/spaghettifunk/anima-drills/engine/containers"
	"github.com/spaghettifunk/anima-drills/engine/core"
)

// DiagnosticSample is one advisory measurement taken on a frame.
type DiagnosticSample struct {
	Frame   uint64
	Message string
	KeyVals []interface{}
}

type DiagnosticsSystemConfig struct {
	// Frames between two emitted lines. Zero keeps the history but logs nothing.
	Every uint64
	// How many samples are kept around.
	HistorySize int
}

// DiagnosticsSystem keeps the latest samples and periodically logs them.
type DiagnosticsSystem struct {
	Config  *DiagnosticsSystemConfig
	history *containers.RingQueue[DiagnosticSample]
	emitted uint64
}

func NewDiagnosticsSystem(config *DiagnosticsSystemConfig) *DiagnosticsSystem {
	return &DiagnosticsSystem{
		Config:  config,
		history: containers.NewRingQueue[DiagnosticSample](config.HistorySize),
	}
}

// Record stores a sample and logs it when frame falls on the configured period.
func (ds *DiagnosticsSystem) Record(frame uint64, msg string, keyvals ...interface{}) {
	ds.history.Push(DiagnosticSample{Frame: frame, Message: msg, KeyVals: keyvals})
	if ds.Config.Every == 0 || frame%ds.Config.Every != 0 {
		return
	}
	core.LogDiagnostic(msg, append([]interface{}{"frame", frame}, keyvals...)...)
	ds.emitted++
}

// History returns the kept samples, oldest first.
func (ds *DiagnosticsSystem) History() []DiagnosticSample {
	return ds.history.Items()
}

// Emitted is the number of lines logged so far.
func (ds *DiagnosticsSystem) Emitted() uint64 {
	return ds.emitted
}

// Latest returns the newest sample.
func (ds *DiagnosticsSystem) Latest() (DiagnosticSample, bool) {
	items := ds.history.Items()
	if len(items) == 0 {
		return DiagnosticSample{}, false
	}
	return items[len(items)-1], true
}

func (ds *DiagnosticsSystem) Shutdown() error {
	for !ds.history.IsEmpty() {
		if _, err := ds.history.Dequeue(); err != nil {
			return err
		}
	}
	return nil
}
