// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/video"
)

// Variant selects the graphics API flavor of a display. Both variants share
// the whole controller; they differ in the API requested from the context
// provider, their backend priority and their names.
type Variant struct {
	// Name is the backend name and the name of the provider option.
	Name string

	// ShortName and Description are human-readable labels.
	ShortName   string
	Description string

	API glctx.API

	// Priority orders backends during automatic selection (higher first).
	Priority int

	// Shortcuts are alternative backend names.
	Shortcuts []string

	// ProviderOverride enables ResolveProviderName during Open.
	ProviderOverride bool
}

// Built-in variants.
var (
	VariantGL = Variant{
		Name:             "gl",
		ShortName:        "OpenGL",
		Description:      "OpenGL video output",
		API:              glctx.OpenGL,
		Priority:         269,
		Shortcuts:        []string{"myopengl", "mygl"},
		ProviderOverride: true,
	}

	VariantGLES2 = Variant{
		Name:        "gles2",
		ShortName:   "OpenGL ES2",
		Description: "OpenGL for video output of embedded systems",
		API:         glctx.GLES2,
		Priority:    264,
		Shortcuts:   []string{"myopengles2", "mygles2"},
	}
)

// GLXProvider is the provider forced for VDPAU interop.
const GLXProvider = "glx"

// ResolveProviderName returns the provider name to create a context with.
//
// VDPAU GL interop only works through GLX, so a desktop GL context on an X11
// window displaying a VDPAU chroma is forced onto the "glx" provider, but
// only when requested does not already name a provider ("" or "any").
// Every other combination returns requested unchanged.
func ResolveProviderName(api glctx.API, kind glctx.WindowKind, chroma video.Chroma, requested string) string {
	if api != glctx.OpenGL || kind != glctx.WindowXID || !chroma.IsVDPAU() {
		return requested
	}
	if !glctx.IsAny(requested) {
		return requested
	}
	return GLXProvider
}
