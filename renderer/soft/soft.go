// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package soft implements a CPU reference renderer.
//
// The renderer keeps the last prepared picture in an RGBA texture, blends
// subpicture regions over it, and on Display scales the visible area into
// the viewport of a context that exposes its framebuffer
// (glctx.FramebufferContext). Viewports use GL conventions: the origin is
// the bottom-left corner of the drawable.
//
// Only packed RGBA and BGRA sources are accepted; projection settings are
// stored for inspection but not applied.
package soft

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/internal/logx"
	"github.com/gogpu/vout/renderer"
	"github.com/gogpu/vout/video"
)

var subpictureFormats = []gputypes.TextureFormat{
	gputypes.TextureFormatRGBA8Unorm,
	gputypes.TextureFormatBGRA8Unorm,
}

// Renderer is the CPU reference renderer. It is NOT safe for concurrent use.
type Renderer struct {
	ctx        glctx.Context
	format     video.Format
	projection renderer.Projection
	viewpoint  video.Viewpoint
	scaler     xdraw.Interpolator

	texture   *image.RGBA
	prepared  bool
	viewport  image.Rectangle
	aspect    float32
	pool      *video.Pool
	destroyed bool
}

// New creates a renderer. It has the renderer.Factory signature.
func New(p renderer.Params) (renderer.Renderer, error) {
	return NewRenderer(p)
}

// NewRenderer creates a renderer and returns the concrete type.
func NewRenderer(p renderer.Params) (*Renderer, error) {
	if p.Context == nil {
		return nil, fmt.Errorf("soft: nil context")
	}
	switch p.Format.Chroma {
	case video.RGBA, video.BGRA:
	default:
		return nil, fmt.Errorf("%w: %v", renderer.ErrUnsupportedChroma, p.Format.Chroma)
	}
	if err := p.Format.Validate(); err != nil {
		return nil, err
	}
	if !isCurrent(p.Context) {
		return nil, renderer.ErrNotCurrent
	}

	r := &Renderer{
		ctx:        p.Context,
		format:     p.Format,
		projection: p.Projection,
		viewpoint:  p.Viewpoint.Clip(),
		scaler:     xdraw.ApproxBiLinear,
		texture:    image.NewRGBA(image.Rect(0, 0, p.Format.Width, p.Format.Height)),
		aspect:     float32(p.Format.Width) / float32(p.Format.Height),
	}
	if fc, ok := p.Context.(glctx.FramebufferContext); ok && fc.Framebuffer() != nil {
		r.viewport = fc.Framebuffer().Bounds()
	}
	logx.Logger().Debug("soft: renderer created",
		slog.String("chroma", p.Format.Chroma.String()),
		slog.Int("width", p.Format.Width),
		slog.Int("height", p.Format.Height))
	return r, nil
}

func isCurrent(ctx glctx.Context) bool {
	if cr, ok := ctx.(glctx.CurrentReporter); ok {
		return cr.IsCurrent()
	}
	return true
}

func (r *Renderer) check() error {
	if r.destroyed {
		return renderer.ErrDestroyed
	}
	if !isCurrent(r.ctx) {
		return renderer.ErrNotCurrent
	}
	return nil
}

// SubpictureFormats returns RGBA8Unorm and BGRA8Unorm.
func (r *Renderer) SubpictureFormats() []gputypes.TextureFormat {
	return subpictureFormats
}

// Pool allocates the picture pool on first use and returns it afterwards.
func (r *Renderer) Pool(count int) (*video.Pool, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if r.pool != nil {
		return r.pool, nil
	}
	pool, err := video.NewPool(r.format, count)
	if err != nil {
		return nil, err
	}
	r.pool = pool
	return pool, nil
}

// Prepare copies pic into the texture and blends the regions of sub.
func (r *Renderer) Prepare(pic *video.Picture, sub *video.Subpicture) error {
	if err := r.check(); err != nil {
		return err
	}
	if pic == nil || pic.Image == nil || pic.Format.Chroma != r.format.Chroma ||
		!pic.Image.Bounds().Eq(r.texture.Bounds()) {
		return video.ErrFormatMismatch
	}

	copyRows(r.texture, pic.Image)
	if r.format.Chroma == video.BGRA {
		swapRB(r.texture, r.texture.Bounds())
	}

	if sub != nil {
		for _, region := range sub.Regions {
			r.blend(region)
		}
	}
	r.prepared = true
	return nil
}

// copyRows copies src into dst row by row, so a src whose stride is wider
// than its bounds is read correctly. Both share the same bounds.
func copyRows(dst, src *image.RGBA) {
	b := src.Bounds()
	n := 4 * b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}

func (r *Renderer) blend(region video.SubpictureRegion) {
	if region.Image == nil {
		return
	}
	src := region.Image
	switch region.Chroma {
	case video.RGBA:
	case video.BGRA:
		src = cloneRGBA(src)
		swapRB(src, src.Bounds())
	default:
		logx.Logger().Debug("soft: skipping subpicture region", slog.String("chroma", region.Chroma.String()))
		return
	}
	b := src.Bounds()
	dst := image.Rect(region.X, region.Y, region.X+b.Dx(), region.Y+b.Dy())
	mask := image.NewUniform(color.Alpha{A: region.Alpha})
	xdraw.DrawMask(r.texture, dst, src, b.Min, mask, image.Point{}, xdraw.Over)
}

// Display scales the visible area of source into the viewport and swaps.
// Contexts without a CPU framebuffer are only swapped.
func (r *Renderer) Display(source video.Format) error {
	if err := r.check(); err != nil {
		return err
	}

	fc, ok := r.ctx.(glctx.FramebufferContext)
	if ok && fc.Framebuffer() != nil && r.prepared {
		fb := fc.Framebuffer()
		xdraw.Draw(fb, fb.Bounds(), image.Black, image.Point{}, xdraw.Src)

		dst := glToImage(r.viewport, fb.Bounds().Dy())
		if !dst.Empty() {
			src := source.Visible().Intersect(r.texture.Bounds())
			r.scaler.Scale(fb, dst, r.texture, src, xdraw.Src, nil)
			if r.projection.AlphaBlend && r.projection.ShowDivider {
				drawDivider(fb, dst)
			}
			if surfaceFormat(r.ctx) == gputypes.TextureFormatBGRA8Unorm {
				swapRB(fb, dst.Intersect(fb.Bounds()))
			}
		}
	}
	r.ctx.SwapBuffers()
	return nil
}

// SetViewport sets the output rectangle, origin at the bottom-left corner.
func (r *Renderer) SetViewport(x, y, width, height int) {
	r.viewport = image.Rect(x, y, x+width, y+height)
}

// SetWindowAspectRatio records the output aspect ratio.
func (r *Renderer) SetWindowAspectRatio(ratio float32) {
	r.aspect = ratio
}

// SetViewpoint stores vp clipped; invalid viewpoints are rejected.
func (r *Renderer) SetViewpoint(vp video.Viewpoint) error {
	if !vp.Valid() {
		return fmt.Errorf("%w: %+v", renderer.ErrInvalidViewpoint, vp)
	}
	r.viewpoint = vp.Clip()
	return nil
}

// Destroy releases the texture.
func (r *Renderer) Destroy() {
	r.destroyed = true
	r.texture = nil
	r.prepared = false
}

// Viewport returns the current viewport in GL coordinates.
func (r *Renderer) Viewport() image.Rectangle { return r.viewport }

// AspectRatio returns the last window aspect ratio.
func (r *Renderer) AspectRatio() float32 { return r.aspect }

// Viewpoint returns the current viewpoint.
func (r *Renderer) Viewpoint() video.Viewpoint { return r.viewpoint }

// Projection returns the projection configuration.
func (r *Renderer) Projection() renderer.Projection { return r.projection }

// Texture returns the prepared texture, or nil after Destroy.
func (r *Renderer) Texture() *image.RGBA { return r.texture }

// glToImage converts a bottom-left origin rectangle into image coordinates
// for a drawable of the given height.
func glToImage(vp image.Rectangle, height int) image.Rectangle {
	return image.Rect(vp.Min.X, height-vp.Max.Y, vp.Max.X, height-vp.Min.Y)
}

func surfaceFormat(ctx glctx.Context) gputypes.TextureFormat {
	if dp, ok := ctx.(gpucontext.DeviceProvider); ok {
		return dp.SurfaceFormat()
	}
	return gputypes.TextureFormatRGBA8Unorm
}

func drawDivider(dst *image.RGBA, r image.Rectangle) {
	x := (r.Min.X + r.Max.X) / 2
	line := image.Rect(x, r.Min.Y, x+1, r.Max.Y)
	xdraw.Draw(dst, line, image.White, image.Point{}, xdraw.Src)
}

func swapRB(img *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
			i += 4
		}
	}
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
	return dst
}

var _ renderer.Renderer = (*Renderer)(nil)
