// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package video holds the data model shared by the display controller, the
// context providers and the renderers.
//
// The package describes pictures and their geometry but never touches a
// graphics context:
//
//   - Chroma: FourCC pixel format identifiers
//   - Format: source geometry (size, visible/cropped area, sample aspect)
//   - DisplayConfig: display size, alignment, fill and zoom settings
//   - PlacePicture: where a source picture lands inside a display
//   - Viewpoint: orientation for spherical content
//   - Picture, Subpicture, Pool: frame buffers exchanged with the pipeline
//
// # Coordinate System
//
// Placement uses display addressing: origin at top-left, Y increases down.
// Renderers whose texture origin is bottom-left must flip vertical alignment
// before calling PlacePicture.
package video
