// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/glctx/headless"
	"github.com/gogpu/vout/renderer"
	"github.com/gogpu/vout/video"
)

func newCurrentContext(t *testing.T, p *headless.Provider, w, h int) *headless.Context {
	t.Helper()
	ctx, err := p.Create(glctx.Window{Width: w, Height: h}, glctx.OpenGL)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	hc := ctx.(*headless.Context)
	if err := hc.MakeCurrent(); err != nil {
		t.Fatalf("MakeCurrent() error = %v", err)
	}
	return hc
}

func fill(img *image.RGBA, c color.RGBA) {
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func newRenderer(t *testing.T, ctx glctx.Context, f video.Format) *Renderer {
	t.Helper()
	r, err := NewRenderer(renderer.Params{
		Format:     f,
		Context:    ctx,
		Viewpoint:  video.DefaultViewpoint(),
		Projection: renderer.DefaultProjection(),
	})
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

func TestNewRejectsChroma(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	_, err := New(renderer.Params{Format: video.NewFormat(video.I420, 4, 4), Context: ctx})
	if !errors.Is(err, renderer.ErrUnsupportedChroma) {
		t.Errorf("New(I420) error = %v, want ErrUnsupportedChroma", err)
	}
}

func TestNewRequiresCurrent(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	ctx.ReleaseCurrent()
	_, err := New(renderer.Params{Format: video.NewFormat(video.RGBA, 4, 4), Context: ctx})
	if !errors.Is(err, renderer.ErrNotCurrent) {
		t.Errorf("New() with released context error = %v, want ErrNotCurrent", err)
	}
}

func TestSubpictureFormats(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	r := newRenderer(t, ctx, video.NewFormat(video.RGBA, 4, 4))
	got := r.SubpictureFormats()
	if len(got) != 2 || got[0] != gputypes.TextureFormatRGBA8Unorm || got[1] != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SubpictureFormats() = %v", got)
	}
}

func TestPrepareDisplay(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 8, 8)
	f := video.NewFormat(video.RGBA, 4, 2)
	r := newRenderer(t, ctx, f)

	pic := video.NewPicture(f)
	fill(pic.Image, color.RGBA{R: 255, A: 255})
	if err := r.Prepare(pic, nil); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	// Bottom half of the drawable in GL coordinates.
	r.SetViewport(0, 0, 8, 4)
	if err := r.Display(f); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	if ctx.Swaps() != 1 {
		t.Fatalf("Swaps() = %d, want 1", ctx.Swaps())
	}

	snap := ctx.Snapshot()
	if got := snap.RGBAAt(1, 6); got.R != 255 || got.G != 0 {
		t.Errorf("pixel inside viewport = %v, want red", got)
	}
	if got := snap.RGBAAt(1, 1); got.R != 0 || got.A != 255 {
		t.Errorf("pixel outside viewport = %v, want opaque black", got)
	}
}

func TestPrepareBGRASource(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 2, 2)
	f := video.NewFormat(video.BGRA, 2, 2)
	r := newRenderer(t, ctx, f)

	pic := video.NewPicture(f)
	// Red in B, G, R, A byte order.
	for i := 0; i < len(pic.Image.Pix); i += 4 {
		pic.Image.Pix[i+2] = 255
		pic.Image.Pix[i+3] = 255
	}
	if err := r.Prepare(pic, nil); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if got := r.Texture().RGBAAt(0, 0); got.R != 255 || got.B != 0 {
		t.Errorf("texture pixel = %v, want red", got)
	}
}

func TestPrepareStrideWiderThanBounds(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 2)
	f := video.NewFormat(video.RGBA, 4, 2)
	r := newRenderer(t, ctx, f)

	wide := image.NewRGBA(image.Rect(0, 0, 8, 2))
	fill(wide.SubImage(image.Rect(0, 0, 8, 1)).(*image.RGBA), color.RGBA{R: 255, A: 255})
	fill(wide.SubImage(image.Rect(0, 1, 8, 2)).(*image.RGBA), color.RGBA{G: 255, A: 255})

	pic := video.NewPicture(f)
	pic.Image = wide.SubImage(image.Rect(0, 0, 4, 2)).(*image.RGBA)
	if err := r.Prepare(pic, nil); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	tex := r.Texture()
	for x := 0; x < 4; x++ {
		if got := tex.RGBAAt(x, 0); got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("texture (%d,0) = %v, want red", x, got)
		}
		if got := tex.RGBAAt(x, 1); got != (color.RGBA{G: 255, A: 255}) {
			t.Errorf("texture (%d,1) = %v, want green", x, got)
		}
	}
}

func TestDisplayBGRASurface(t *testing.T) {
	ctx := newCurrentContext(t, &headless.Provider{Format: gputypes.TextureFormatBGRA8Unorm}, 2, 2)
	f := video.NewFormat(video.RGBA, 2, 2)
	r := newRenderer(t, ctx, f)

	pic := video.NewPicture(f)
	fill(pic.Image, color.RGBA{R: 255, A: 255})
	if err := r.Prepare(pic, nil); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if err := r.Display(f); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	px := ctx.Snapshot().Pix
	if px[0] != 0 || px[2] != 255 {
		t.Errorf("surface bytes = %v, want blue/red swapped", px[:4])
	}
}

func TestPrepareBlendsSubpicture(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	f := video.NewFormat(video.RGBA, 4, 4)
	r := newRenderer(t, ctx, f)

	pic := video.NewPicture(f)
	fill(pic.Image, color.RGBA{R: 255, A: 255})

	overlay := image.NewRGBA(image.Rect(0, 0, 1, 1))
	overlay.SetRGBA(0, 0, color.RGBA{G: 255, A: 255})
	bgr := image.NewRGBA(image.Rect(0, 0, 1, 1))
	bgr.Pix[0], bgr.Pix[3] = 255, 255 // blue in B, G, R, A order
	sub := &video.Subpicture{Regions: []video.SubpictureRegion{
		{Chroma: video.RGBA, Image: overlay, X: 0, Y: 0, Alpha: 255},
		{Chroma: video.BGRA, Image: bgr, X: 2, Y: 2, Alpha: 255},
		{Chroma: video.I420, Image: overlay, X: 3, Y: 3, Alpha: 255},
	}}
	if err := r.Prepare(pic, sub); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	tex := r.Texture()
	if got := tex.RGBAAt(0, 0); got.G != 255 || got.R != 0 {
		t.Errorf("RGBA region pixel = %v, want green", got)
	}
	if got := tex.RGBAAt(2, 2); got.B != 255 || got.R != 0 {
		t.Errorf("BGRA region pixel = %v, want blue", got)
	}
	if got := tex.RGBAAt(3, 3); got.R != 255 {
		t.Errorf("unsupported region was blended: %v", got)
	}
}

func TestCallsRequireCurrent(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	f := video.NewFormat(video.RGBA, 4, 4)
	r := newRenderer(t, ctx, f)
	ctx.ReleaseCurrent()

	if err := r.Prepare(video.NewPicture(f), nil); !errors.Is(err, renderer.ErrNotCurrent) {
		t.Errorf("Prepare() error = %v, want ErrNotCurrent", err)
	}
	if err := r.Display(f); !errors.Is(err, renderer.ErrNotCurrent) {
		t.Errorf("Display() error = %v, want ErrNotCurrent", err)
	}
	if _, err := r.Pool(2); !errors.Is(err, renderer.ErrNotCurrent) {
		t.Errorf("Pool() error = %v, want ErrNotCurrent", err)
	}
}

func TestPrepareMismatch(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	r := newRenderer(t, ctx, video.NewFormat(video.RGBA, 4, 4))

	wrong := video.NewPicture(video.NewFormat(video.RGBA, 2, 2))
	if err := r.Prepare(wrong, nil); !errors.Is(err, video.ErrFormatMismatch) {
		t.Errorf("Prepare(wrong size) error = %v, want ErrFormatMismatch", err)
	}
	if err := r.Prepare(nil, nil); !errors.Is(err, video.ErrFormatMismatch) {
		t.Errorf("Prepare(nil) error = %v, want ErrFormatMismatch", err)
	}
}

func TestPool(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	f := video.NewFormat(video.RGBA, 16, 9)
	r := newRenderer(t, ctx, f)

	pool, err := r.Pool(3)
	if err != nil {
		t.Fatalf("Pool() error = %v", err)
	}
	if pool.Len() != 3 {
		t.Errorf("Len() = %d, want 3", pool.Len())
	}
	if pool.Format() != f {
		t.Errorf("Format() = %+v, want %+v", pool.Format(), f)
	}
	again, err := r.Pool(5)
	if err != nil || again != pool {
		t.Errorf("second Pool() = %p, %v; want the first pool", again, err)
	}
}

func TestSetViewpoint(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	r := newRenderer(t, ctx, video.NewFormat(video.RGBA, 4, 4))

	if err := r.SetViewpoint(video.Viewpoint{Yaw: 400, FOV: 90}); err != nil {
		t.Fatalf("SetViewpoint() error = %v", err)
	}
	if got := r.Viewpoint(); got.Yaw != 40 || got.FOV != 90 {
		t.Errorf("Viewpoint() = %+v, want yaw 40 fov 90", got)
	}
	if err := r.SetViewpoint(video.Viewpoint{FOV: 5}); !errors.Is(err, renderer.ErrInvalidViewpoint) {
		t.Errorf("SetViewpoint(fov 5) error = %v, want ErrInvalidViewpoint", err)
	}
}

func TestDestroy(t *testing.T) {
	ctx := newCurrentContext(t, headless.New(), 4, 4)
	f := video.NewFormat(video.RGBA, 4, 4)
	r := newRenderer(t, ctx, f)
	r.Destroy()
	if r.Texture() != nil {
		t.Error("Texture() should be nil after Destroy")
	}
	if err := r.Display(f); !errors.Is(err, renderer.ErrDestroyed) {
		t.Errorf("Display() after Destroy error = %v, want ErrDestroyed", err)
	}
}
