package renderer

import (
	"fmt"

	"github.com/spaghettifunk/anima-drills/engine/core"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	DrawItem(item *DrawItem) error
}

// HeadlessBackend draws nothing. It logs what it would draw at debug level and
// keeps the last frame around so callers can inspect it.
type HeadlessBackend struct {
	width, height uint32
	frames        uint64
	inFrame       bool
	lastFrame     []DrawItem
	current       []DrawItem
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

func (hb *HeadlessBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	hb.width, hb.height = appWidth, appHeight
	core.LogInfo("headless renderer initialized for %s (%dx%d)", appName, appWidth, appHeight)
	return nil
}

func (hb *HeadlessBackend) Shutdown() error {
	hb.lastFrame = nil
	hb.current = nil
	return nil
}

func (hb *HeadlessBackend) Resized(width, height uint16) error {
	hb.width, hb.height = uint32(width), uint32(height)
	return nil
}

func (hb *HeadlessBackend) BeginFrame(deltaTime float64) error {
	if hb.inFrame {
		return fmt.Errorf("BeginFrame called twice without EndFrame")
	}
	hb.inFrame = true
	hb.current = hb.current[:0]
	return nil
}

func (hb *HeadlessBackend) EndFrame(deltaTime float64) error {
	if !hb.inFrame {
		return fmt.Errorf("EndFrame called without BeginFrame")
	}
	hb.inFrame = false
	hb.lastFrame = append(hb.lastFrame[:0], hb.current...)
	hb.frames++
	return nil
}

func (hb *HeadlessBackend) DrawItem(item *DrawItem) error {
	if !hb.inFrame {
		return fmt.Errorf("DrawItem called outside of a frame")
	}
	hb.current = append(hb.current, *item)
	core.LogDebug("draw %s %q at %v rot %.3f size %v colour %v",
		item.Kind, item.Name, item.Transform.Position, item.Transform.Rotation, item.Size, item.Colour)
	return nil
}

// LastFrame returns the items drawn by the last completed frame.
func (hb *HeadlessBackend) LastFrame() []DrawItem {
	return hb.lastFrame
}

func (hb *HeadlessBackend) Frames() uint64 {
	return hb.frames
}

func (hb *HeadlessBackend) Size() (uint32, uint32) {
	return hb.width, hb.height
}
