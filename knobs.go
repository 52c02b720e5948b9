// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import "github.com/gogpu/vout/renderer"

// KnobKind is the value type of a Knob.
type KnobKind uint8

// Knob kinds.
const (
	KnobString KnobKind = iota
	KnobBool
	KnobFloat
)

// Knob describes a user-visible setting of a display backend.
type Knob struct {
	Name     string
	Text     string
	LongText string
	Kind     KnobKind

	DefaultString string
	DefaultBool   bool
	DefaultFloat  float32

	// Min and Max bound KnobFloat values.
	Min, Max float32

	// Safe settings may be set from untrusted sources such as playlists.
	Safe bool
}

// Knob names shared by all variants.
const (
	KnobEquirectangular = "equirectangular-projection"
	KnobAlphaBlend      = "alpha-blend-projection"
	KnobFitToDisplay    = "alpha-blend-fit-to-display"
	KnobShowDivider     = "alpha-blend-show-divider"
	KnobEnableBlend     = "alpha-blend-enable-blend"
	KnobFrontOverlap    = "alpha-blend-ratio-front"
	KnobRearOverlap     = "alpha-blend-ratio-rear"
)

// Knobs returns the settings exposed by variant v: the provider selector,
// named after the variant, followed by the projection settings.
func Knobs(v Variant) []Knob {
	def := renderer.DefaultProjection()
	return []Knob{
		{
			Name:          v.Name,
			Text:          "OpenGL extension",
			LongText:      "Extension through which to use the Open Graphics Library (OpenGL).",
			Kind:          KnobString,
			DefaultString: "any",
			Safe:          true,
		},
		{
			Name:        KnobEquirectangular,
			Text:        "Equirectangular projection",
			LongText:    "Project 360° content as an equirectangular panorama.",
			Kind:        KnobBool,
			DefaultBool: def.Equirectangular,
		},
		{
			Name:        KnobAlphaBlend,
			Text:        "Alpha-blend projection",
			LongText:    "Blend the two lenses of a dual-fisheye picture.",
			Kind:        KnobBool,
			DefaultBool: def.AlphaBlend,
		},
		{
			Name:        KnobFitToDisplay,
			Text:        "Fit to display",
			LongText:    "Scale the blended picture to the display.",
			Kind:        KnobBool,
			DefaultBool: def.FitToDisplay,
		},
		{
			Name:        KnobShowDivider,
			Text:        "Show divider",
			LongText:    "Draw the seam between the two lenses.",
			Kind:        KnobBool,
			DefaultBool: def.ShowDivider,
		},
		{
			Name:        KnobEnableBlend,
			Text:        "Enable blend",
			LongText:    "Blend the overlapping bands instead of cutting them.",
			Kind:        KnobBool,
			DefaultBool: def.EnableBlend,
		},
		{
			Name:         KnobFrontOverlap,
			Text:         "Front overlap ratio",
			LongText:     "Overlap ratio of the front lens.",
			Kind:         KnobFloat,
			DefaultFloat: def.FrontOverlap,
			Min:          renderer.OverlapRatioMin,
			Max:          renderer.OverlapRatioMax,
		},
		{
			Name:         KnobRearOverlap,
			Text:         "Rear overlap ratio",
			LongText:     "Overlap ratio of the rear lens.",
			Kind:         KnobFloat,
			DefaultFloat: def.RearOverlap,
			Min:          renderer.OverlapRatioMin,
			Max:          renderer.OverlapRatioMax,
		},
	}
}
