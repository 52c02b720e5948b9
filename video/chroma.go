// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import "github.com/gogpu/gputypes"

// Chroma is a FourCC pixel format identifier.
type Chroma uint32

// FourCC builds a Chroma from four ASCII bytes.
func FourCC(a, b, c, d byte) Chroma {
	return Chroma(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// Known chromas.
var (
	// RGBA is packed 8-bit red, green, blue, alpha.
	RGBA = FourCC('R', 'G', 'B', 'A')

	// BGRA is packed 8-bit blue, green, red, alpha.
	BGRA = FourCC('B', 'G', 'R', 'A')

	// I420 is planar 4:2:0 YUV.
	I420 = FourCC('I', '4', '2', '0')

	// NV12 is semi-planar 4:2:0 YUV.
	NV12 = FourCC('N', 'V', '1', '2')

	// VDPAUVideo420 is an opaque VDPAU surface with 4:2:0 chroma.
	VDPAUVideo420 = FourCC('V', 'D', 'V', '0')

	// VDPAUVideo422 is an opaque VDPAU surface with 4:2:2 chroma.
	VDPAUVideo422 = FourCC('V', 'D', 'V', '2')

	// VDPAUVideo444 is an opaque VDPAU surface with 4:4:4 chroma.
	VDPAUVideo444 = FourCC('V', 'D', 'V', '4')
)

// String returns the four characters of the code.
func (c Chroma) String() string {
	b := [4]byte{byte(c), byte(c >> 8), byte(c >> 16), byte(c >> 24)}
	for i := range b {
		if b[i] < 0x20 || b[i] > 0x7e {
			b[i] = '?'
		}
	}
	return string(b[:])
}

// IsVDPAU reports whether c is one of the GPU-decoded VDPAU surface formats.
func (c Chroma) IsVDPAU() bool {
	switch c {
	case VDPAUVideo420, VDPAUVideo422, VDPAUVideo444:
		return true
	}
	return false
}

// TextureFormat returns the GPU texture format matching c, or
// gputypes.TextureFormatUndefined if c has no packed texture equivalent.
func (c Chroma) TextureFormat() gputypes.TextureFormat {
	switch c {
	case RGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRA:
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatUndefined
}

// ChromaForTexture is the inverse of TextureFormat. It returns 0 for
// formats without a packed chroma.
func ChromaForTexture(f gputypes.TextureFormat) Chroma {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return RGBA
	case gputypes.TextureFormatBGRA8Unorm:
		return BGRA
	}
	return 0
}
