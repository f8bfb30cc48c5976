package renderer

import (
	"github.com/spaghettifunk/anima-drills/engine/core"
)

type Renderer struct {
	backend RendererBackend
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.backend.Initialize(appName, appWidth, appHeight)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint16) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) DrawFrame(renderPacket *RenderPacket) error {
	if err := r.backend.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	for i := range renderPacket.Items {
		if err := r.backend.DrawItem(&renderPacket.Items[i]); err != nil {
			core.LogError(err.Error())
			return err
		}
	}
	if err := r.backend.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
