// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import "errors"

// Package errors.
var (
	// ErrInvalidFormat is returned when a Format has no usable geometry.
	ErrInvalidFormat = errors.New("video: invalid format")

	// ErrFormatMismatch is returned when a picture does not match the format
	// it is used with.
	ErrFormatMismatch = errors.New("video: picture format mismatch")
)
