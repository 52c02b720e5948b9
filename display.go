// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"fmt"
	"slices"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/internal/logx"
	"github.com/gogpu/vout/renderer"
	"github.com/gogpu/vout/video"
)

// Outcome is the result of a per-frame operation.
type Outcome uint8

const (
	// Rendered means the renderer processed the frame.
	Rendered Outcome = iota

	// Dropped means the context could not be acquired and the renderer was
	// not touched. The frame is lost; the display stays usable.
	Dropped

	// Failed means the renderer was reached and reported an error.
	Failed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Rendered:
		return "Rendered"
	case Dropped:
		return "Dropped"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Display is an open video output. It owns exactly one context and one
// renderer from Open until Close.
//
// Display is not safe for concurrent use.
type Display struct {
	variant    Variant
	provider   string
	ctx        glctx.Context
	r          renderer.Renderer
	pool       *video.Pool
	format     video.Format
	source     video.Format
	cfg        video.DisplayConfig
	projection renderer.Projection
	subFormats []gputypes.TextureFormat
}

// Open creates a display on win for pictures of the given format.
//
// Open resolves the provider name, creates a context, sizes it to
// cfg.Width x cfg.Height and constructs the renderer while the context is
// current. On failure every resource acquired so far is released and the
// returned error wraps ErrContextCreation, ErrContextAcquire or
// ErrRendererInit.
func Open(win glctx.Window, format video.Format, cfg video.DisplayConfig, opts ...Option) (*Display, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := o.providerName
	if o.override && o.variant.ProviderOverride {
		name = ResolveProviderName(o.variant.API, win.Kind, format.Chroma, name)
	}

	ctx, err := o.providers.Create(win, o.variant.API, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContextCreation, err)
	}

	ctx.Resize(cfg.Width, cfg.Height)

	if err := ctx.MakeCurrent(); err != nil {
		ctx.Release()
		return nil, fmt.Errorf("%w: %w", ErrContextAcquire, err)
	}

	r, err := o.newRenderer(renderer.Params{
		Format:     format,
		Context:    ctx,
		Viewpoint:  cfg.Viewpoint,
		Projection: o.projection,
	})
	if err == nil && r == nil {
		err = errNilRenderer
	}
	ctx.ReleaseCurrent()
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("%w: %w", ErrRendererInit, err)
	}

	d := &Display{
		variant:    o.variant,
		provider:   name,
		ctx:        ctx,
		r:          r,
		format:     format,
		source:     format,
		cfg:        cfg,
		projection: o.projection,
		subFormats: slices.Clone(r.SubpictureFormats()),
	}

	logx.Logger().Info("vout: display opened",
		"variant", o.variant.Name,
		"provider", name,
		"chroma", format.Chroma,
		"width", cfg.Width,
		"height", cfg.Height)
	return d, nil
}

// Close destroys the renderer with the context current, then releases the
// context. Close is idempotent.
func (d *Display) Close() {
	if d.ctx == nil {
		return
	}
	acquired := true
	if err := d.ctx.MakeCurrent(); err != nil {
		acquired = false
		logx.Logger().Warn("vout: close without current context", "error", err)
	}
	d.r.Destroy()
	if acquired {
		d.ctx.ReleaseCurrent()
	}
	d.ctx.Release()

	d.ctx = nil
	d.r = nil
	d.pool = nil
	logx.Logger().Info("vout: display closed", "variant", d.variant.Name)
}

// SubpictureFormats returns the overlay formats the renderer accepts,
// captured at Open.
func (d *Display) SubpictureFormats() []gputypes.TextureFormat {
	return d.subFormats
}

// Pool returns the picture pool, creating it with count pictures on the
// first successful call. Later calls return the same pool regardless of
// count. Pool returns nil while the context cannot be acquired; the next
// call retries.
func (d *Display) Pool(count int) *video.Pool {
	if d.pool != nil {
		return d.pool
	}
	if d.ctx == nil {
		return nil
	}
	if err := d.ctx.MakeCurrent(); err != nil {
		logx.Logger().Debug("vout: pool unavailable", "error", err)
		return nil
	}
	pool, err := d.r.Pool(count)
	d.ctx.ReleaseCurrent()
	if err != nil {
		logx.Logger().Warn("vout: pool creation failed", "count", count, "error", err)
		return nil
	}
	d.pool = pool
	return pool
}

// Prepare uploads pic and sub to the renderer ahead of display. date is the
// presentation deadline; it is informational. Prepare does not release pic
// or sub.
func (d *Display) Prepare(pic *video.Picture, sub *video.Subpicture, date time.Time) Outcome {
	if d.ctx == nil {
		return Dropped
	}
	if err := d.ctx.MakeCurrent(); err != nil {
		logx.Logger().Debug("vout: prepare dropped", "error", err)
		return Dropped
	}
	err := d.r.Prepare(pic, sub)
	d.ctx.ReleaseCurrent()
	if err != nil {
		logx.Logger().Warn("vout: prepare failed", "date", date, "error", err)
		return Failed
	}
	return Rendered
}

// Display presents the last prepared picture. pic and sub are released
// unconditionally, whether or not the context could be acquired.
func (d *Display) Display(pic *video.Picture, sub *video.Subpicture) Outcome {
	outcome := Dropped
	if d.ctx != nil {
		if err := d.ctx.MakeCurrent(); err != nil {
			logx.Logger().Debug("vout: display dropped", "error", err)
		} else {
			err := d.r.Display(d.source)
			d.ctx.ReleaseCurrent()
			outcome = Rendered
			if err != nil {
				logx.Logger().Warn("vout: display failed", "error", err)
				outcome = Failed
			}
		}
	}
	if pic != nil {
		pic.Release()
	}
	if sub != nil {
		sub.Destroy()
	}
	return outcome
}

// PicturesInvalid reports whether previously pooled pictures must be
// discarded. It is always false: the pool never changes after creation.
func (d *Display) PicturesInvalid() bool { return false }

// Variant returns the variant the display was opened with.
func (d *Display) Variant() Variant { return d.variant }

// ProviderName returns the provider name that was requested from the
// registry after override resolution.
func (d *Display) ProviderName() string { return d.provider }

// Format returns the picture format negotiated at Open.
func (d *Display) Format() video.Format { return d.format }

// Source returns the current source geometry. It starts as Format and
// follows ChangeSourceAspect and ChangeSourceCrop queries.
func (d *Display) Source() video.Format { return d.source }

// Config returns the last display configuration successfully applied.
func (d *Display) Config() video.DisplayConfig { return d.cfg }

// Projection returns the projection configuration given to the renderer.
func (d *Display) Projection() renderer.Projection { return d.projection }

// Context returns the graphics context, or nil after Close.
func (d *Display) Context() glctx.Context { return d.ctx }
