// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides an offscreen context provider backed by an
// in-memory framebuffer.
//
// Importing the package registers the provider under the name "headless"
// with priority 10, so it is the last resort of "any" selection:
//
//	import _ "github.com/gogpu/vout/glctx/headless"
//
// Headless contexts enforce the make-current discipline: nested
// MakeCurrent calls and use after Release fail. They implement
// gpucontext.DeviceProvider with a null device so renderers written against
// the gpucontext ecosystem can query the surface format.
package headless

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vout/glctx"
)

// Name is the provider name.
const Name = "headless"

// Priority is the registry priority of the provider.
const Priority = 10

// Errors.
var (
	// ErrAlreadyCurrent is returned by MakeCurrent on a context that is
	// already current.
	ErrAlreadyCurrent = errors.New("headless: context already current")

	// ErrReleased is returned by MakeCurrent after Release.
	ErrReleased = errors.New("headless: context released")
)

func init() {
	glctx.Register(New(), Priority)
}

// Provider creates headless contexts.
type Provider struct {
	// Format is the surface format reported by created contexts.
	// Zero means RGBA8Unorm.
	Format gputypes.TextureFormat
}

// New creates a provider reporting an RGBA8Unorm surface.
func New() *Provider {
	return &Provider{Format: gputypes.TextureFormatRGBA8Unorm}
}

// Name returns "headless".
func (p *Provider) Name() string { return Name }

// Supports reports true for every API and window kind.
func (p *Provider) Supports(glctx.API, glctx.WindowKind) bool { return true }

// Create creates a context whose framebuffer has the window size.
func (p *Provider) Create(win glctx.Window, api glctx.API) (glctx.Context, error) {
	format := p.Format
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}
	c := &Context{api: api, format: format}
	c.Resize(win.Width, win.Height)
	return c, nil
}

// Context is an offscreen context. It is NOT safe for concurrent use.
type Context struct {
	api     glctx.API
	format  gputypes.TextureFormat
	back    *image.RGBA
	front   *image.RGBA
	current bool
	dead    bool
	swaps   int
}

// API returns the API the context was created for.
func (c *Context) API() glctx.API { return c.api }

// MakeCurrent marks the context current.
func (c *Context) MakeCurrent() error {
	if c.dead {
		return ErrReleased
	}
	if c.current {
		return ErrAlreadyCurrent
	}
	c.current = true
	return nil
}

// ReleaseCurrent marks the context not current.
func (c *Context) ReleaseCurrent() { c.current = false }

// IsCurrent reports whether the context is current.
func (c *Context) IsCurrent() bool { return c.current }

// Resize reallocates the framebuffer when the size changes.
// Non-positive sizes become 1 pixel.
func (c *Context) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if c.back != nil && c.back.Rect.Dx() == width && c.back.Rect.Dy() == height {
		return
	}
	c.back = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Size returns the framebuffer size.
func (c *Context) Size() (width, height int) {
	if c.back == nil {
		return 0, 0
	}
	return c.back.Rect.Dx(), c.back.Rect.Dy()
}

// Framebuffer returns the back buffer renderers draw into.
func (c *Context) Framebuffer() *image.RGBA { return c.back }

// SwapBuffers copies the back buffer to the front buffer.
func (c *Context) SwapBuffers() {
	if c.back == nil {
		return
	}
	if c.front == nil || c.front.Rect != c.back.Rect {
		c.front = image.NewRGBA(c.back.Rect)
	}
	copy(c.front.Pix, c.back.Pix)
	c.swaps++
}

// Snapshot returns the last presented frame, or nil before the first swap.
// The returned image is owned by the context until the next swap.
func (c *Context) Snapshot() *image.RGBA { return c.front }

// Swaps returns the number of SwapBuffers calls.
func (c *Context) Swaps() int { return c.swaps }

// Released reports whether Release was called.
func (c *Context) Released() bool { return c.dead }

// Release destroys the framebuffers.
func (c *Context) Release() {
	c.dead = true
	c.current = false
	c.back = nil
	c.front = nil
}

// Device returns nil; headless contexts have no GPU device.
func (c *Context) Device() gpucontext.Device { return nil }

// Queue returns nil; headless contexts have no GPU queue.
func (c *Context) Queue() gpucontext.Queue { return nil }

// Adapter returns nil; headless contexts have no GPU adapter.
func (c *Context) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports a software adapter named "headless".
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: Name, Type: gpucontext.AdapterTypeSoftware}
}

// SurfaceFormat returns the framebuffer pixel format.
func (c *Context) SurfaceFormat() gputypes.TextureFormat { return c.format }

var (
	_ glctx.Context             = (*Context)(nil)
	_ glctx.CurrentReporter     = (*Context)(nil)
	_ glctx.FramebufferContext  = (*Context)(nil)
	_ gpucontext.DeviceProvider = (*Context)(nil)
)
