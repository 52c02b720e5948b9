// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"fmt"

	"github.com/gogpu/vout/internal/logx"
	"github.com/gogpu/vout/video"
)

// QueryKind identifies a control query.
type QueryKind uint8

// Control query kinds.
const (
	QueryUnknown QueryKind = iota
	QueryResetPictures
	QueryChangeFullscreen
	QueryChangeWindowState
	QueryChangeDisplaySize
	QueryChangeDisplayFilled
	QueryChangeZoom
	QueryChangeSourceAspect
	QueryChangeSourceCrop
	QueryChangeViewpoint
)

var queryNames = [...]string{
	QueryUnknown:             "Unknown",
	QueryResetPictures:       "ResetPictures",
	QueryChangeFullscreen:    "ChangeFullscreen",
	QueryChangeWindowState:   "ChangeWindowState",
	QueryChangeDisplaySize:   "ChangeDisplaySize",
	QueryChangeDisplayFilled: "ChangeDisplayFilled",
	QueryChangeZoom:          "ChangeZoom",
	QueryChangeSourceAspect:  "ChangeSourceAspect",
	QueryChangeSourceCrop:    "ChangeSourceCrop",
	QueryChangeViewpoint:     "ChangeViewpoint",
}

// String returns the query name.
func (k QueryKind) String() string {
	if int(k) < len(queryNames) {
		return queryNames[k]
	}
	return fmt.Sprintf("QueryKind(%d)", uint8(k))
}

// Query is a control request sent to Display.Control.
type Query interface {
	Kind() QueryKind
}

// ChangeDisplaySize reports a new display configuration after a window
// resize.
type ChangeDisplaySize struct {
	Config video.DisplayConfig
}

// ChangeDisplayFilled toggles filling the display.
type ChangeDisplayFilled struct {
	Config video.DisplayConfig
}

// ChangeZoom changes the zoom factor.
type ChangeZoom struct {
	Config video.DisplayConfig
}

// ChangeSourceAspect reports a new source sample aspect ratio.
type ChangeSourceAspect struct {
	Source video.Format
}

// ChangeSourceCrop reports a new visible area of the source.
type ChangeSourceCrop struct {
	Source video.Format
}

// ChangeViewpoint sets the 360° viewpoint.
type ChangeViewpoint struct {
	Viewpoint video.Viewpoint
}

// ResetPictures asks the display to rebuild its pictures. It is never
// valid for this display.
type ResetPictures struct{}

// ChangeFullscreen is handled by the window owner, not by this display.
type ChangeFullscreen struct {
	Fullscreen bool
}

// WindowState is the stacking state of a window.
type WindowState uint8

// Window states.
const (
	WindowNormal WindowState = iota
	WindowAbove
	WindowBelow
)

// ChangeWindowState is handled by the window owner, not by this display.
type ChangeWindowState struct {
	State WindowState
}

func (ChangeDisplaySize) Kind() QueryKind   { return QueryChangeDisplaySize }
func (ChangeDisplayFilled) Kind() QueryKind { return QueryChangeDisplayFilled }
func (ChangeZoom) Kind() QueryKind          { return QueryChangeZoom }
func (ChangeSourceAspect) Kind() QueryKind  { return QueryChangeSourceAspect }
func (ChangeSourceCrop) Kind() QueryKind    { return QueryChangeSourceCrop }
func (ChangeViewpoint) Kind() QueryKind     { return QueryChangeViewpoint }
func (ResetPictures) Kind() QueryKind       { return QueryResetPictures }
func (ChangeFullscreen) Kind() QueryKind    { return QueryChangeFullscreen }
func (ChangeWindowState) Kind() QueryKind   { return QueryChangeWindowState }

// Control applies a control query.
//
// Display-size, filled and zoom queries resize the context to the new
// display and recompute the placement; source aspect and crop queries
// recompute the placement for the updated source against the current
// display. In both cases the viewport and window aspect ratio are pushed
// to the renderer with the context current, and ErrContextAcquire is
// returned when it cannot be acquired. Viewpoint queries are forwarded to
// the renderer. Every other query returns an *UnsupportedQueryError.
//
// Queries are passed by value; a pointer to one of the query types above
// is accepted and dereferenced, and a nil pointer is an unknown query.
func (d *Display) Control(q Query) error {
	q = queryValue(q)
	if q == nil {
		return d.unsupported(QueryUnknown)
	}
	if d.ctx == nil {
		return fmt.Errorf("%w: display closed", ErrContextAcquire)
	}

	switch q := q.(type) {
	case ChangeDisplaySize:
		return d.changeDisplay(q.Config)
	case ChangeDisplayFilled:
		return d.changeDisplay(q.Config)
	case ChangeZoom:
		return d.changeDisplay(q.Config)
	case ChangeSourceAspect:
		return d.changeSource(q.Source)
	case ChangeSourceCrop:
		return d.changeSource(q.Source)
	case ChangeViewpoint:
		if err := d.r.SetViewpoint(q.Viewpoint); err != nil {
			return err
		}
		d.cfg.Viewpoint = q.Viewpoint
		return nil
	case ResetPictures:
		if debugBuild {
			panic("vout: ResetPictures is not valid for this display")
		}
	}
	return d.unsupported(q.Kind())
}

// queryValue dereferences a pointer to a known query type.
func queryValue(q Query) Query {
	switch p := q.(type) {
	case *ChangeDisplaySize:
		return derefQuery(p)
	case *ChangeDisplayFilled:
		return derefQuery(p)
	case *ChangeZoom:
		return derefQuery(p)
	case *ChangeSourceAspect:
		return derefQuery(p)
	case *ChangeSourceCrop:
		return derefQuery(p)
	case *ChangeViewpoint:
		return derefQuery(p)
	case *ResetPictures:
		return derefQuery(p)
	case *ChangeFullscreen:
		return derefQuery(p)
	case *ChangeWindowState:
		return derefQuery(p)
	}
	return q
}

func derefQuery[T Query](p *T) Query {
	if p == nil {
		return nil
	}
	return *p
}

// changeDisplay places the picture on a new display. The placement uses
// the configuration with its vertical alignment mirrored, because the GL
// viewport origin is the bottom-left corner.
func (d *Display) changeDisplay(cfg video.DisplayConfig) error {
	flipped := cfg.FlipVertical()
	place := video.PlacePicture(d.source, flipped)

	d.ctx.Resize(flipped.Width, flipped.Height)
	if err := d.applyPlace(place); err != nil {
		return err
	}
	d.cfg = cfg
	return nil
}

// changeSource places the updated source against the current display
// without resizing the context.
func (d *Display) changeSource(src video.Format) error {
	d.source = src
	return d.applyPlace(video.PlacePicture(src, d.cfg))
}

func (d *Display) applyPlace(place video.Place) error {
	if err := d.ctx.MakeCurrent(); err != nil {
		return fmt.Errorf("%w: %w", ErrContextAcquire, err)
	}
	if ratio := place.AspectRatio(); ratio > 0 {
		d.r.SetWindowAspectRatio(ratio)
	}
	d.r.SetViewport(place.X, place.Y, place.Width, place.Height)
	d.ctx.ReleaseCurrent()

	logx.Logger().Debug("vout: placement",
		"x", place.X, "y", place.Y,
		"width", place.Width, "height", place.Height)
	return nil
}

func (d *Display) unsupported(kind QueryKind) error {
	logx.Logger().Error("vout: unknown request", "kind", kind)
	return &UnsupportedQueryError{Kind: kind}
}
