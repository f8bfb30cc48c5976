package platform

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/anima-drills/engine/containers"
	"github.com/spaghettifunk/anima-drills/engine/core"
)

var startTime = time.Now()

// GetAbsoluteTime returns the seconds elapsed since the process started.
func GetAbsoluteTime() float64 {
	return time.Since(startTime).Seconds()
}

// KeyFrame holds Keys down for Frames consecutive frames.
type KeyFrame struct {
	Frames uint64
	Keys   []core.KeyCode
}

// Platform is a windowless platform layer. Instead of polling a window it
// replays a key script into the input state, one frame per PumpMessages call.
type Platform struct {
	name          string
	width, height uint32
	input         *core.InputState
	script        *containers.RingQueue[KeyFrame]
	current       KeyFrame
	// Frames left in the current key frame.
	remaining uint64
	held      []core.KeyCode
	started   bool
}

func New(input *core.InputState, script []KeyFrame) (*Platform, error) {
	if input == nil {
		return nil, fmt.Errorf("func platform.New - input state must not be nil")
	}
	q := containers.NewRingQueue[KeyFrame](len(script))
	for _, step := range script {
		if step.Frames == 0 {
			continue
		}
		if err := q.Enqueue(step); err != nil {
			return nil, err
		}
	}
	return &Platform{
		input:  input,
		script: q,
	}, nil
}

func (p *Platform) Startup(applicationName string, width uint32, height uint32) error {
	p.name = applicationName
	p.width, p.height = width, height
	p.started = true
	core.LogDebug("platform started for %s with %d scripted key frames", applicationName, p.script.Len())
	return nil
}

func (p *Platform) Shutdown() error {
	p.releaseHeld()
	p.started = false
	return nil
}

/**
 * @brief Applies the key state of the next scripted frame. Keys that are no
 * longer held are released, new ones pressed, each change firing its event.
 *
 * @return False when the platform has not been started.
 */
func (p *Platform) PumpMessages() bool {
	if !p.started {
		return false
	}
	if p.remaining == 0 {
		next, err := p.script.Dequeue()
		if err != nil {
			// Script over, let go of everything.
			p.releaseHeld()
			return true
		}
		p.current = next
		p.remaining = next.Frames
	}
	p.remaining--
	p.apply(p.current.Keys)
	return true
}

// Done reports whether every scripted frame has been played.
func (p *Platform) Done() bool {
	return p.remaining == 0 && p.script.IsEmpty()
}

func (p *Platform) apply(keys []core.KeyCode) {
	want := make(map[core.KeyCode]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	for _, k := range p.held {
		if !want[k] {
			p.input.ProcessKey(k, false)
		}
	}
	for _, k := range keys {
		p.input.ProcessKey(k, true)
	}
	p.held = append(p.held[:0], keys...)
}

func (p *Platform) releaseHeld() {
	for _, k := range p.held {
		p.input.ProcessKey(k, false)
	}
	p.held = p.held[:0]
}

func (p *Platform) Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}

func (p *Platform) Size() (uint32, uint32) {
	return p.width, p.height
}
