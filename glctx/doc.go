// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glctx defines the contract between the display controller and the
// providers that create OpenGL-family contexts on platform windows.
//
// A Provider turns a Window descriptor into a Context of a given API kind.
// A Context exposes the exclusive-access pair MakeCurrent/ReleaseCurrent,
// drawable resizing and buffer swapping.
//
// # Registry
//
// Providers register under a unique name with a priority:
//
//	func init() {
//	    glctx.Register(myProvider{}, 100)
//	}
//
// Create resolves a provider by name, or tries every registered provider in
// priority order when the name is empty or "any":
//
//	ctx, err := glctx.Create(win, glctx.OpenGL, "any")
//
// # Thread Safety
//
// The registry is safe for concurrent use. Contexts are not: a Context must
// be driven by one goroutine at a time, and callers that need the context
// bound to an OS thread must lock that thread themselves.
package glctx
