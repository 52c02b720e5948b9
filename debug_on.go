// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build voutdebug

package vout

// debugBuild turns contract violations into panics.
const debugBuild = true
