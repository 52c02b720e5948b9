// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !voutdebug

package vout

const debugBuild = false
