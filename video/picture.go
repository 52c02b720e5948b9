// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// Picture is a reference-counted frame buffer.
//
// Image holds packed 4-byte pixels in the order given by Format.Chroma; for
// planar or opaque chromas the buffer is left nil and the picture only
// carries its format.
//
// A picture starts with one reference. Hold adds one, Release drops one;
// when the count reaches zero a pooled picture returns to its pool.
type Picture struct {
	Format Format
	Image  *image.RGBA

	refs atomic.Int32
	pool *Pool
}

// NewPicture allocates a standalone picture for f with one reference.
func NewPicture(f Format) *Picture {
	p := &Picture{Format: f}
	if f.Chroma.TextureFormat() != gputypes.TextureFormatUndefined && f.Width > 0 && f.Height > 0 {
		p.Image = image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	}
	p.refs.Store(1)
	return p
}

// Hold adds a reference and returns p for chaining.
func (p *Picture) Hold() *Picture {
	p.refs.Add(1)
	return p
}

// Release drops a reference. Releasing a picture with no references panics.
func (p *Picture) Release() {
	n := p.refs.Add(-1)
	if n < 0 {
		panic("video: picture released with no references")
	}
	if n == 0 && p.pool != nil {
		p.pool.put(p)
	}
}

// Refs returns the current reference count.
func (p *Picture) Refs() int {
	return int(p.refs.Load())
}

// SubpictureRegion is one overlay bitmap positioned in source coordinates.
type SubpictureRegion struct {
	Chroma Chroma
	Image  *image.RGBA
	X, Y   int

	// Alpha is the global opacity of the region, 0 transparent to 255 opaque.
	Alpha uint8
}

// Subpicture is a set of overlay regions composited over one picture.
// Its lifetime ends with Destroy.
type Subpicture struct {
	Regions []SubpictureRegion

	destroyed atomic.Bool
}

// Destroy ends the subpicture's lifetime. It is idempotent.
func (s *Subpicture) Destroy() {
	if s.destroyed.Swap(true) {
		return
	}
	s.Regions = nil
}

// Destroyed reports whether Destroy was called.
func (s *Subpicture) Destroyed() bool {
	return s.destroyed.Load()
}

// Pool is a fixed set of pictures handed to the decoding pipeline.
// Pool is safe for concurrent use.
type Pool struct {
	format Format

	mu       sync.Mutex
	pictures []*Picture
	free     []*Picture
}

// NewPool allocates count pictures of format f.
func NewPool(f Format, count int) (*Pool, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 1
	}
	p := &Pool{
		format:   f,
		pictures: make([]*Picture, count),
		free:     make([]*Picture, 0, count),
	}
	for i := range p.pictures {
		pic := NewPicture(f)
		pic.refs.Store(0)
		pic.pool = p
		p.pictures[i] = pic
		p.free = append(p.free, pic)
	}
	return p, nil
}

// Format returns the format shared by every picture of the pool.
func (p *Pool) Format() Format {
	return p.format
}

// Len returns the number of pictures owned by the pool.
func (p *Pool) Len() int {
	return len(p.pictures)
}

// Free returns the number of pictures currently available.
func (p *Pool) Free() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Get returns a free picture holding one reference, or nil when every
// picture is in use.
func (p *Pool) Get() *Picture {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.free)
	if n == 0 {
		return nil
	}
	pic := p.free[n-1]
	p.free = p.free[:n-1]
	pic.refs.Store(1)
	return pic
}

func (p *Pool) put(pic *Picture) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, pic)
}
