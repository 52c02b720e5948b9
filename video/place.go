// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

// Align is a horizontal or vertical alignment.
type Align uint8

const (
	// AlignCenter centers the picture on the axis.
	AlignCenter Align = iota
	// AlignLeft pins the picture to the left edge.
	AlignLeft
	// AlignRight pins the picture to the right edge.
	AlignRight
	// AlignTop pins the picture to the top edge.
	AlignTop
	// AlignBottom pins the picture to the bottom edge.
	AlignBottom
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return "center"
	}
}

// Alignment pairs the horizontal and vertical alignments.
type Alignment struct {
	Horizontal Align
	Vertical   Align
}

// DisplayConfig is a snapshot of the display the picture is shown on.
type DisplayConfig struct {
	// Width and Height are the display size in pixels.
	Width, Height int

	// SARNum/SARDen is the display sample aspect ratio (0 means 1:1).
	SARNum, SARDen int

	Align Alignment

	// Filled scales the picture to the display instead of its default size.
	Filled bool

	// ZoomNum/ZoomDen scales the default size when Filled is false (0 means 1:1).
	ZoomNum, ZoomDen int

	Viewpoint Viewpoint
}

// SAR returns the display sample aspect ratio, substituting 1:1 for unset values.
func (c DisplayConfig) SAR() (num, den int) {
	if c.SARNum <= 0 || c.SARDen <= 0 {
		return 1, 1
	}
	return c.SARNum, c.SARDen
}

// Zoom returns the zoom factor, substituting 1:1 for unset values.
func (c DisplayConfig) Zoom() (num, den int) {
	if c.ZoomNum <= 0 || c.ZoomDen <= 0 {
		return 1, 1
	}
	return c.ZoomNum, c.ZoomDen
}

// FlipVertical returns a copy of c with top and bottom alignment exchanged.
// Center alignment is left untouched.
func (c DisplayConfig) FlipVertical() DisplayConfig {
	switch c.Align.Vertical {
	case AlignTop:
		c.Align.Vertical = AlignBottom
	case AlignBottom:
		c.Align.Vertical = AlignTop
	}
	return c
}

// Place is the rectangle a picture occupies in display coordinates.
// X and Y may be negative when the picture overflows the display.
type Place struct {
	X, Y          int
	Width, Height int
}

// AspectRatio returns Width/Height, or 0 for an empty placement.
func (p Place) AspectRatio() float32 {
	if p.Width <= 0 || p.Height <= 0 {
		return 0
	}
	return float32(p.Width) / float32(p.Height)
}

// DefaultDisplaySize returns the size at which src is shown when the
// display imposes no constraint, honoring the sample aspect ratios, the
// zoom and the source orientation. A non-zero cfg width or height pins
// that dimension.
func DefaultDisplaySize(src Format, cfg DisplayConfig) (width, height int) {
	vis := src.Visible()
	vw, vh := int64(vis.Dx()), int64(vis.Dy())
	if vw <= 0 || vh <= 0 {
		return 0, 0
	}
	snum, sden := src.SAR()
	dnum, dden := cfg.SAR()
	sn, sd, dn, dd := int64(snum), int64(sden), int64(dnum), int64(dden)

	var w, h int64
	switch {
	case cfg.Width > 0 && cfg.Height > 0:
		w, h = int64(cfg.Width), int64(cfg.Height)
	case cfg.Width > 0:
		w = int64(cfg.Width)
		h = vh * sd * w * dn / vw / sn / dd
	case cfg.Height > 0:
		h = int64(cfg.Height)
		w = vw * sn * h * dd / vh / sd / dn
	case sn >= sd:
		w = vw * sn * dd / sd / dn
		h = vh
	default:
		w = vw
		h = vh * sd * dn / sn / dd
	}

	znum, zden := cfg.Zoom()
	w = w * int64(znum) / int64(zden)
	h = h * int64(znum) / int64(zden)

	if src.Orientation.Swapped() {
		w, h = h, w
	}
	return int(w), int(h)
}

// PlacePicture computes where src is drawn inside the display described
// by cfg. The picture keeps its aspect ratio unless it uses a spherical
// projection, which always fills the display box. The result is not
// clipped to the display.
func PlacePicture(src Format, cfg DisplayConfig) Place {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Place{}
	}
	src = src.upright()

	var dw, dh int64
	if cfg.Filled {
		dw, dh = int64(cfg.Width), int64(cfg.Height)
	} else {
		free := cfg
		free.Width, free.Height = 0, 0
		w, h := DefaultDisplaySize(src, free)
		dw, dh = int64(w), int64(h)
	}

	vis := src.Visible()
	vw, vh := int64(vis.Dx()), int64(vis.Dy())
	if vw <= 0 || vh <= 0 {
		return Place{}
	}
	snum, sden := src.SAR()
	dnum, dden := cfg.SAR()
	sn, sd, dn, dd := int64(snum), int64(sden), int64(dnum), int64(dden)

	// Height when filling dw, and width when filling dh.
	scaledHeight := vh * dw * dn * sd / vw / sn / dd
	scaledWidth := vw * dh * dd * sn / vh / sd / dn

	var place Place
	if src.Projection == ProjectionRectangular {
		if scaledWidth <= int64(cfg.Width) {
			place.Width, place.Height = int(scaledWidth), int(dh)
		} else {
			place.Width, place.Height = int(dw), int(scaledHeight)
		}
	} else {
		place.Width, place.Height = int(dw), int(dh)
	}

	switch cfg.Align.Horizontal {
	case AlignLeft:
		place.X = 0
	case AlignRight:
		place.X = cfg.Width - place.Width
	default:
		place.X = (cfg.Width - place.Width) / 2
	}

	switch cfg.Align.Vertical {
	case AlignTop:
		place.Y = 0
	case AlignBottom:
		place.Y = cfg.Height - place.Height
	default:
		place.Y = (cfg.Height - place.Height) / 2
	}
	return place
}
