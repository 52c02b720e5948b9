// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vout is an OpenGL video output display for media pipelines.
//
// # Overview
//
// A Display owns a graphics context created on a platform window and a
// renderer bound to that context. The host pipeline drives it:
//
//	d, err := vout.Open(win, format, cfg)
//	if err != nil {
//	    return err // no output; try another backend
//	}
//	defer d.Close()
//
//	pool := d.Pool(4) // nil until the context can be acquired
//	pic := pool.Get()
//	// ... decode into pic ...
//	d.Prepare(pic, nil, deadline)
//	d.Display(pic, nil) // releases pic
//
//	// Window resized:
//	err = d.Control(vout.ChangeDisplaySize{Config: newCfg})
//
// # Context Discipline
//
// Every operation that touches the renderer or the pool makes the context
// current first and releases it before returning; no operation leaves the
// context current across a call. Per-frame operations degrade to a dropped
// frame when the context cannot be acquired, and report it through Outcome
// instead of an error.
//
// # Providers
//
// Context providers register themselves in the default glctx registry when
// their package is imported:
//
//	import _ "github.com/gogpu/vout/glctx/headless"
//
// # Variants
//
// The same controller serves desktop OpenGL (VariantGL) and OpenGL ES 2
// (VariantGLES2). The variant is chosen once with WithVariant.
//
// # Thread Safety
//
// A Display is NOT safe for concurrent use. The host pipeline must serialize
// calls on a given Display. If the context provider requires a fixed OS
// thread, the caller locks it.
//
// # Architecture
//
//   - vout: Display controller, queries, variants, configuration
//   - video: formats, placement, pictures, pools
//   - glctx: context provider contract and registry
//   - glctx/headless, glctx/glfwctx: context providers
//   - renderer, renderer/soft: renderer contract and CPU reference renderer
package vout
