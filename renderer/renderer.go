// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package renderer defines the contract between the display controller and
// the renderers that own GPU-side state (textures, programs, projection).
//
// A Renderer is bound to one glctx.Context for its whole life. The display
// controller makes that context current around every Renderer call except
// SetViewpoint, so implementations never acquire or release it themselves.
package renderer

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/video"
)

// Common renderer errors.
var (
	// ErrUnsupportedChroma is returned by factories that cannot display
	// the negotiated pixel format.
	ErrUnsupportedChroma = errors.New("renderer: unsupported chroma")

	// ErrInvalidViewpoint is returned by SetViewpoint for out-of-range values.
	ErrInvalidViewpoint = errors.New("renderer: invalid viewpoint")

	// ErrNotCurrent is returned when a call arrives while the bound context
	// is not current.
	ErrNotCurrent = errors.New("renderer: context not current")

	// ErrDestroyed is returned by calls made after Destroy.
	ErrDestroyed = errors.New("renderer: destroyed")
)

// Params are the construction parameters of a Renderer.
type Params struct {
	// Format is the negotiated source format.
	Format video.Format

	// Context is the graphics context the renderer draws with. It is
	// current for the duration of the factory call.
	Context glctx.Context

	// Viewpoint is the initial viewpoint.
	Viewpoint video.Viewpoint

	// Projection is the projection configuration captured at open time.
	Projection Projection
}

// Factory constructs a Renderer.
type Factory func(p Params) (Renderer, error)

// Renderer draws pictures with a graphics context.
//
// Every method except SetViewpoint is called with the bound context
// current. SetViewpoint runs without it and must only update CPU-side
// state; the new viewpoint takes effect on the next Display.
type Renderer interface {
	// SubpictureFormats returns the overlay formats the renderer can
	// composite. The slice must not be modified.
	SubpictureFormats() []gputypes.TextureFormat

	// Pool allocates a pool of count pictures matching the source format.
	Pool(count int) (*video.Pool, error)

	// Prepare uploads pic and composites sub (which may be nil).
	Prepare(pic *video.Picture, sub *video.Subpicture) error

	// Display presents the last prepared picture using source geometry.
	Display(source video.Format) error

	// SetViewport sets the output rectangle in drawable coordinates.
	SetViewport(x, y, width, height int)

	// SetWindowAspectRatio sets the aspect ratio of the output rectangle.
	SetWindowAspectRatio(ratio float32)

	// SetViewpoint changes the viewpoint for spherical content. The
	// context is not current.
	SetViewpoint(vp video.Viewpoint) error

	// Destroy releases all GPU resources.
	Destroy()
}
