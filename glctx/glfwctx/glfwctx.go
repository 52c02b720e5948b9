// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwctx provides desktop OpenGL and OpenGL ES 2 contexts on GLFW
// windows.
//
// Importing the package registers the provider under the name "glfw" with
// priority 100.
//
// GLFW must be initialized and windows created from the main OS thread.
// Callers lock the main thread from an init function and drive the display
// from it:
//
//	func init() { runtime.LockOSThread() }
//
// The provider creates its own window, so it only supports Window values of
// kind glctx.WindowEmpty.
package glfwctx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/vout/glctx"
)

// Name is the provider name.
const Name = "glfw"

// Priority is the registry priority of the provider.
const Priority = 100

// Errors.
var (
	// ErrNotCurrent is returned when MakeContextCurrent did not bind the window.
	ErrNotCurrent = errors.New("glfwctx: window context did not become current")

	// ErrDestroyed is returned by MakeCurrent after Release.
	ErrDestroyed = errors.New("glfwctx: window destroyed")
)

var (
	initOnce sync.Once
	initErr  error
)

func initGLFW() error {
	initOnce.Do(func() {
		initErr = glfw.Init()
	})
	return initErr
}

// Terminate shuts GLFW down. Call it last, from the main thread.
func Terminate() {
	glfw.Terminate()
}

func init() {
	glctx.Register(&Provider{}, Priority)
}

// Provider creates GLFW window contexts.
type Provider struct {
	// Visible shows the window; hidden windows still have a drawable.
	Visible bool
}

// Name returns "glfw".
func (p *Provider) Name() string { return Name }

// Supports reports whether the provider can serve api on windows of kind.
func (p *Provider) Supports(api glctx.API, kind glctx.WindowKind) bool {
	return kind == glctx.WindowEmpty && (api == glctx.OpenGL || api == glctx.GLES2)
}

// Create opens a window with a context of api.
func (p *Provider) Create(win glctx.Window, api glctx.API) (glctx.Context, error) {
	if err := initGLFW(); err != nil {
		return nil, fmt.Errorf("glfwctx: init: %w", err)
	}

	glfw.DefaultWindowHints()
	switch api {
	case glctx.GLES2:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
	default:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	}
	if p.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	title := win.Title
	if title == "" {
		title = "vout"
	}
	w, err := glfw.CreateWindow(max(win.Width, 1), max(win.Height, 1), title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfwctx: create window: %w", err)
	}
	return &Context{win: w, api: api}, nil
}

// Context is a GLFW window and its context.
type Context struct {
	win *glfw.Window
	api glctx.API
}

// API returns the API the context was created for.
func (c *Context) API() glctx.API { return c.api }

// Window returns the underlying GLFW window, or nil after Release.
func (c *Context) Window() *glfw.Window { return c.win }

// MakeCurrent binds the window context to the calling thread.
func (c *Context) MakeCurrent() error {
	if c.win == nil {
		return ErrDestroyed
	}
	c.win.MakeContextCurrent()
	if glfw.GetCurrentContext() != c.win {
		return ErrNotCurrent
	}
	return nil
}

// ReleaseCurrent detaches whatever context is current on the calling thread.
func (c *Context) ReleaseCurrent() {
	glfw.DetachCurrentContext()
}

// IsCurrent reports whether the window context is current on the calling thread.
func (c *Context) IsCurrent() bool {
	return c.win != nil && glfw.GetCurrentContext() == c.win
}

// Resize sets the window size.
func (c *Context) Resize(width, height int) {
	if c.win == nil || width <= 0 || height <= 0 {
		return
	}
	c.win.SetSize(width, height)
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() {
	if c.win != nil {
		c.win.SwapBuffers()
	}
}

// Release destroys the window.
func (c *Context) Release() {
	if c.win == nil {
		return
	}
	c.win.Destroy()
	c.win = nil
}

var (
	_ glctx.Context         = (*Context)(nil)
	_ glctx.CurrentReporter = (*Context)(nil)
)
