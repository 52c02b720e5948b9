// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/renderer"
	"github.com/gogpu/vout/video"
)

var (
	errFakeCurrent  = errors.New("fake: make current failed")
	errFakeCreate   = errors.New("fake: create failed")
	errFakeRenderer = errors.New("fake: renderer failed")
)

// callLog records the calls made across the fakes in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (l *callLog) reset() { l.calls = nil }

// --- context ---

type fakeContext struct {
	provider    *fakeProvider
	log         *callLog
	api         glctx.API
	current     bool
	released    bool
	failCurrent bool
	width       int
	height      int
	swaps       int
}

func (c *fakeContext) API() glctx.API { return c.api }

func (c *fakeContext) MakeCurrent() error {
	c.log.add("make-current")
	if c.failCurrent || c.released {
		return errFakeCurrent
	}
	c.current = true
	return nil
}

func (c *fakeContext) ReleaseCurrent() {
	c.log.add("release-current")
	c.current = false
}

func (c *fakeContext) Resize(width, height int) {
	c.log.add("resize %dx%d", width, height)
	c.width, c.height = width, height
}

func (c *fakeContext) SwapBuffers() { c.swaps++ }

func (c *fakeContext) Release() {
	c.log.add("release")
	if !c.released {
		c.provider.live--
	}
	c.released = true
	c.current = false
}

func (c *fakeContext) IsCurrent() bool { return c.current }

// --- provider ---

type fakeProvider struct {
	name        string
	log         *callLog
	createErr   error
	failCurrent bool
	live        int
	last        *fakeContext
	apis        []glctx.API
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Supports(glctx.API, glctx.WindowKind) bool { return true }

func (p *fakeProvider) Create(win glctx.Window, api glctx.API) (glctx.Context, error) {
	p.log.add("create %s", p.name)
	p.apis = append(p.apis, api)
	if p.createErr != nil {
		return nil, p.createErr
	}
	c := &fakeContext{provider: p, log: p.log, api: api, failCurrent: p.failCurrent}
	p.live++
	p.last = c
	return c, nil
}

// --- renderer ---

type fakeFactory struct {
	log    *callLog
	err    error
	live   int
	last   *fakeRenderer
	params renderer.Params
}

func (f *fakeFactory) New(p renderer.Params) (renderer.Renderer, error) {
	f.log.add("renderer-new")
	f.params = p
	if f.err != nil {
		return nil, f.err
	}
	r := &fakeRenderer{factory: f, ctx: p.Context.(*fakeContext), format: p.Format}
	r.touch()
	f.live++
	f.last = r
	return r, nil
}

type fakeRenderer struct {
	factory *fakeFactory
	ctx     *fakeContext
	format  video.Format

	viewport   [4]int
	viewports  int
	aspect     float32
	viewpoint  video.Viewpoint
	prepares   int
	displays   int
	pools      int
	prepareErr error
	displayErr error
	destroyed  bool

	// notCurrent counts calls made while the context was not current.
	notCurrent int
}

func (r *fakeRenderer) touch() {
	if !r.ctx.current {
		r.notCurrent++
	}
}

func (r *fakeRenderer) SubpictureFormats() []gputypes.TextureFormat {
	return []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm}
}

func (r *fakeRenderer) Pool(count int) (*video.Pool, error) {
	r.touch()
	r.pools++
	return video.NewPool(r.format, count)
}

func (r *fakeRenderer) Prepare(pic *video.Picture, sub *video.Subpicture) error {
	r.touch()
	r.prepares++
	return r.prepareErr
}

func (r *fakeRenderer) Display(source video.Format) error {
	r.touch()
	r.displays++
	r.factory.log.add("present")
	return r.displayErr
}

func (r *fakeRenderer) SetViewport(x, y, width, height int) {
	r.touch()
	r.viewports++
	r.viewport = [4]int{x, y, width, height}
	r.factory.log.add("viewport %d,%d,%d,%d", x, y, width, height)
}

func (r *fakeRenderer) SetWindowAspectRatio(ratio float32) {
	r.touch()
	r.aspect = ratio
}

func (r *fakeRenderer) SetViewpoint(vp video.Viewpoint) error {
	if !vp.Valid() {
		return renderer.ErrInvalidViewpoint
	}
	r.viewpoint = vp
	return nil
}

func (r *fakeRenderer) Destroy() {
	r.touch()
	r.factory.log.add("renderer-destroy")
	if !r.destroyed {
		r.factory.live--
	}
	r.destroyed = true
}

// --- environment ---

type fakeEnv struct {
	log      *callLog
	provider *fakeProvider
	factory  *fakeFactory
	reg      *glctx.Registry
}

func newFakeEnv() *fakeEnv {
	log := &callLog{}
	e := &fakeEnv{
		log:      log,
		provider: &fakeProvider{name: "fake", log: log},
		factory:  &fakeFactory{log: log},
		reg:      glctx.NewRegistry(),
	}
	e.reg.Register(e.provider, 1)
	return e
}

func (e *fakeEnv) options(extra ...Option) []Option {
	return append([]Option{WithProviders(e.reg), WithRenderer(e.factory.New)}, extra...)
}

func (e *fakeEnv) ctx() *fakeContext { return e.provider.last }

func (e *fakeEnv) renderer() *fakeRenderer { return e.factory.last }

func fullHD() (video.Format, video.DisplayConfig) {
	return video.NewFormat(video.RGBA, 1920, 1080), video.DisplayConfig{
		Width:     1920,
		Height:    1080,
		Filled:    true,
		Viewpoint: video.DefaultViewpoint(),
	}
}

// openFake opens a 1920x1080 display on a fresh fake environment.
func openFake(t *testing.T, opts ...Option) (*Display, *fakeEnv) {
	t.Helper()
	env := newFakeEnv()
	format, cfg := fullHD()
	d, err := Open(glctx.Window{Width: 1920, Height: 1080}, format, cfg, env.options(opts...)...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(d.Close)
	return d, env
}

func equalCalls(got, want []string) bool { return slices.Equal(got, want) }
