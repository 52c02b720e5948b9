// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import (
	"fmt"
	"image"
)

// ProjectionMode describes how source pixels map onto the viewing sphere.
type ProjectionMode uint8

const (
	// ProjectionRectangular is flat video.
	ProjectionRectangular ProjectionMode = iota

	// ProjectionEquirectangular is 360° video stored as an equirectangular map.
	ProjectionEquirectangular

	// ProjectionCubemap is 360° video stored as a standard cube map.
	ProjectionCubemap
)

// Orientation is the EXIF-style orientation of the source.
type Orientation uint8

// Orientations, named by the transform that restores an upright picture.
const (
	OrientNormal Orientation = iota
	OrientHFlipped
	OrientRotated180
	OrientVFlipped
	OrientTransposed
	OrientRotated270
	OrientRotated90
	OrientAntiTransposed
)

// Swapped reports whether the orientation exchanges width and height.
func (o Orientation) Swapped() bool {
	switch o {
	case OrientTransposed, OrientRotated270, OrientRotated90, OrientAntiTransposed:
		return true
	}
	return false
}

// Format is the geometry and pixel format of a source picture.
//
// The visible area is the cropped region inside the full buffer. A zero
// visible size means the whole buffer is visible; a zero sample aspect
// ratio means square pixels.
type Format struct {
	Chroma Chroma

	// Width and Height are the full buffer dimensions.
	Width, Height int

	// VisibleX, VisibleY, VisibleWidth and VisibleHeight give the crop.
	VisibleX, VisibleY          int
	VisibleWidth, VisibleHeight int

	// SARNum/SARDen is the sample (pixel) aspect ratio.
	SARNum, SARDen int

	Projection  ProjectionMode
	Orientation Orientation
}

// NewFormat returns a fully visible, square-pixel rectangular format.
func NewFormat(chroma Chroma, width, height int) Format {
	return Format{
		Chroma:        chroma,
		Width:         width,
		Height:        height,
		VisibleWidth:  width,
		VisibleHeight: height,
		SARNum:        1,
		SARDen:        1,
	}
}

// Visible returns the visible area as a rectangle in buffer coordinates.
func (f Format) Visible() image.Rectangle {
	w, h := f.VisibleWidth, f.VisibleHeight
	if w <= 0 || h <= 0 {
		return image.Rect(0, 0, f.Width, f.Height)
	}
	return image.Rect(f.VisibleX, f.VisibleY, f.VisibleX+w, f.VisibleY+h)
}

// SAR returns the sample aspect ratio, substituting 1:1 for unset values.
func (f Format) SAR() (num, den int) {
	if f.SARNum <= 0 || f.SARDen <= 0 {
		return 1, 1
	}
	return f.SARNum, f.SARDen
}

// Validate checks that the format describes a usable picture.
func (f Format) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidFormat, f.Width, f.Height)
	}
	vis := f.Visible()
	if vis.Empty() || !vis.In(image.Rect(0, 0, f.Width, f.Height)) {
		return fmt.Errorf("%w: visible area %v outside %dx%d", ErrInvalidFormat, vis, f.Width, f.Height)
	}
	return nil
}

// upright returns the format as seen after applying its orientation.
// Axis-swapping orientations exchange the dimensions and the aspect ratio.
func (f Format) upright() Format {
	if !f.Orientation.Swapped() {
		return f
	}
	vis := f.Visible()
	num, den := f.SAR()
	return Format{
		Chroma:        f.Chroma,
		Width:         f.Height,
		Height:        f.Width,
		VisibleX:      vis.Min.Y,
		VisibleY:      vis.Min.X,
		VisibleWidth:  vis.Dy(),
		VisibleHeight: vis.Dx(),
		SARNum:        den,
		SARDen:        num,
		Projection:    f.Projection,
		Orientation:   OrientNormal,
	}
}
