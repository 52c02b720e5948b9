// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import "errors"

// Display errors.
var (
	// ErrContextCreation is returned by Open when no provider could create
	// a context. It is fatal to the open call.
	ErrContextCreation = errors.New("vout: context creation failed")

	// ErrContextAcquire is returned when the context could not be made
	// current. Open fails with it; control queries report it for the
	// single call.
	ErrContextAcquire = errors.New("vout: context acquire failed")

	// ErrRendererInit is returned by Open when the renderer could not be
	// constructed. The context has been destroyed when it is returned.
	ErrRendererInit = errors.New("vout: renderer initialization failed")

	// ErrUnsupportedQuery matches every *UnsupportedQueryError.
	ErrUnsupportedQuery = errors.New("vout: unsupported control query")

	// ErrBackendUnavailable is returned by OpenBackend when no variant
	// could be opened.
	ErrBackendUnavailable = errors.New("vout: backend unavailable")

	// ErrUnknownBackend is returned by OpenBackend for an unknown name.
	ErrUnknownBackend = errors.New("vout: unknown backend")

	errNilRenderer = errors.New("vout: renderer factory returned nil")
)

// UnsupportedQueryError reports a control query the display does not handle.
type UnsupportedQueryError struct {
	Kind QueryKind
}

func (e *UnsupportedQueryError) Error() string {
	return "vout: unsupported control query: " + e.Kind.String()
}

// Is reports whether target is ErrUnsupportedQuery.
func (e *UnsupportedQueryError) Is(target error) bool {
	return target == ErrUnsupportedQuery
}
