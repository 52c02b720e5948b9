// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/renderer"
	"github.com/gogpu/vout/renderer/soft"
)

// Option configures a Display during Open.
// Use functional options to customize Display behavior.
//
// Example:
//
//	// Default: desktop GL, automatic provider, software renderer
//	d, err := vout.Open(win, format, cfg)
//
//	// GLES2 on a named provider with 360° alpha blending
//	p := renderer.DefaultProjection()
//	p.AlphaBlend = true
//	d, err := vout.Open(win, format, cfg,
//	    vout.WithVariant(vout.VariantGLES2),
//	    vout.WithProviderName("glfw"),
//	    vout.WithProjection(p))
type Option func(*openOptions)

// openOptions holds optional configuration for Display creation.
type openOptions struct {
	variant      Variant
	providerName string
	projection   renderer.Projection
	providers    *glctx.Registry
	newRenderer  renderer.Factory
	override     bool
}

// defaultOptions returns the default open options.
func defaultOptions() openOptions {
	return openOptions{
		variant:     VariantGL,
		projection:  renderer.DefaultProjection(),
		providers:   glctx.Default(),
		newRenderer: soft.New,
		override:    true,
	}
}

// WithVariant selects the graphics API variant. Default: VariantGL.
func WithVariant(v Variant) Option {
	return func(o *openOptions) {
		o.variant = v
	}
}

// WithProviderName sets the requested context provider. The name may be a
// single provider, "any", or a comma-separated fallback list such as
// "glfw,any". Empty means "any".
func WithProviderName(name string) Option {
	return func(o *openOptions) {
		o.providerName = name
	}
}

// WithProjection sets the 360° projection parameters. Overlap ratios are
// clamped into [renderer.OverlapRatioMin, renderer.OverlapRatioMax].
func WithProjection(p renderer.Projection) Option {
	return func(o *openOptions) {
		o.projection = p.Clamp()
	}
}

// WithProviders sets the provider registry to create contexts from.
// Default: glctx.Default().
func WithProviders(r *glctx.Registry) Option {
	return func(o *openOptions) {
		if r != nil {
			o.providers = r
		}
	}
}

// WithRenderer sets the renderer constructor. Default: soft.New.
//
// Example:
//
//	d, err := vout.Open(win, format, cfg, vout.WithRenderer(mygl.New))
func WithRenderer(f renderer.Factory) Option {
	return func(o *openOptions) {
		if f != nil {
			o.newRenderer = f
		}
	}
}

// WithProviderOverride enables or disables the VDPAU provider override
// (see ResolveProviderName). It has no effect on variants that do not
// carry the override. Default: enabled.
func WithProviderOverride(enabled bool) Option {
	return func(o *openOptions) {
		o.override = enabled
	}
}
