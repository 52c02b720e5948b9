// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import "github.com/chewxy/math32"

// Overlap ratio bounds and defaults for alpha-blend projection.
const (
	OverlapRatioMin float32 = 0
	OverlapRatioMax float32 = 0.5

	DefaultFrontOverlap float32 = 0.09
	DefaultRearOverlap  float32 = 0.135
)

// Projection is the projection configuration handed to renderers.
// Renderers interpret it; the display controller only passes it through.
type Projection struct {
	// Equirectangular enables equirectangular projection of 360° content.
	Equirectangular bool

	// AlphaBlend enables dual-lens alpha-blend projection.
	AlphaBlend bool

	// FitToDisplay scales the blended picture to the display.
	FitToDisplay bool

	// ShowDivider draws the seam between the two lenses.
	ShowDivider bool

	// EnableBlend blends the overlapping bands instead of cutting them.
	EnableBlend bool

	// FrontOverlap and RearOverlap are the overlap ratios of the front and
	// rear lenses, in [OverlapRatioMin, OverlapRatioMax].
	FrontOverlap float32
	RearOverlap  float32
}

// DefaultProjection returns the default configuration: equirectangular on,
// alpha blend off, fit to display on.
func DefaultProjection() Projection {
	return Projection{
		Equirectangular: true,
		FitToDisplay:    true,
		FrontOverlap:    DefaultFrontOverlap,
		RearOverlap:     DefaultRearOverlap,
	}
}

// Clamp returns p with the overlap ratios clamped into range.
// NaN ratios are replaced by their defaults.
func (p Projection) Clamp() Projection {
	p.FrontOverlap = clampRatio(p.FrontOverlap, DefaultFrontOverlap)
	p.RearOverlap = clampRatio(p.RearOverlap, DefaultRearOverlap)
	return p
}

func clampRatio(v, def float32) float32 {
	switch {
	case math32.IsNaN(v):
		return def
	case v < OverlapRatioMin:
		return OverlapRatioMin
	case v > OverlapRatioMax:
		return OverlapRatioMax
	}
	return v
}
