// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import "image"

// API is the graphics API flavor a context is created for.
type API uint8

const (
	// OpenGL is desktop OpenGL.
	OpenGL API = iota + 1

	// GLES2 is OpenGL ES 2.
	GLES2
)

// String returns the API name.
func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case GLES2:
		return "OpenGL ES 2"
	default:
		return "unknown"
	}
}

// WindowKind identifies the native handle type of a Window.
type WindowKind uint8

const (
	// WindowEmpty has no native handle; providers create their own drawable.
	WindowEmpty WindowKind = iota
	// WindowXID is an X11 window ID.
	WindowXID
	// WindowHWND is a Win32 window handle.
	WindowHWND
	// WindowNSObject is a Cocoa NSView.
	WindowNSObject
	// WindowWayland is a Wayland surface.
	WindowWayland
	// WindowAndroid is an Android native window.
	WindowAndroid
)

// String returns the window kind name.
func (k WindowKind) String() string {
	switch k {
	case WindowXID:
		return "xid"
	case WindowHWND:
		return "hwnd"
	case WindowNSObject:
		return "nsobject"
	case WindowWayland:
		return "wayland"
	case WindowAndroid:
		return "android"
	default:
		return "empty"
	}
}

// Window describes the platform surface a context draws on.
type Window struct {
	Kind WindowKind

	// Handle is the native handle; its meaning depends on Kind.
	Handle uintptr

	// Display is the native display connection, if the platform has one.
	Display uintptr

	// Width and Height are the initial surface size in pixels.
	Width, Height int

	// Title is used by providers that create their own window.
	Title string
}

// Context is a graphics context bound to a window surface.
//
// Every GL operation must happen between MakeCurrent and ReleaseCurrent,
// and the context must not be left current across an API boundary.
type Context interface {
	// API returns the API flavor the context was created for.
	API() API

	// MakeCurrent binds the context to the calling thread. It may block on
	// the driver.
	MakeCurrent() error

	// ReleaseCurrent unbinds the context from the calling thread.
	ReleaseCurrent()

	// Resize changes the drawable size in pixels.
	Resize(width, height int)

	// SwapBuffers presents the back buffer. The context must be current.
	SwapBuffers()

	// Release destroys the context. The context must not be used afterwards.
	Release()
}

// CurrentReporter is implemented by contexts that can tell whether they
// are current. Renderers use it to check the make-current discipline.
type CurrentReporter interface {
	IsCurrent() bool
}

// FramebufferContext is implemented by contexts whose drawable is CPU
// addressable. Software renderers draw into the returned back buffer.
type FramebufferContext interface {
	Framebuffer() *image.RGBA
}

// Provider creates contexts.
type Provider interface {
	// Name returns the unique provider name, e.g. "glx", "egl", "glfw".
	Name() string

	// Supports reports whether the provider can create a context of api on
	// windows of kind.
	Supports(api API, kind WindowKind) bool

	// Create creates a context of api on win.
	Create(win Window, api API) (Context, error)
}
