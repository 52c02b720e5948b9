// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/vout/glctx"
	"github.com/gogpu/vout/internal/logx"
	"github.com/gogpu/vout/video"
)

var (
	backendsMu sync.RWMutex
	backends   = []Variant{VariantGL, VariantGLES2}
)

// RegisterBackend adds or replaces (by name) a variant in the backend table.
func RegisterBackend(v Variant) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	for i := range backends {
		if strings.EqualFold(backends[i].Name, v.Name) {
			backends[i] = v
			return
		}
	}
	backends = append(backends, v)
}

// Backends returns the registered variants, highest priority first.
func Backends() []Variant {
	backendsMu.RLock()
	out := slices.Clone(backends)
	backendsMu.RUnlock()
	slices.SortStableFunc(out, func(a, b Variant) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return out
}

// LookupBackend finds a variant by name or shortcut, ignoring case.
func LookupBackend(name string) (Variant, bool) {
	name = strings.TrimSpace(name)
	for _, v := range Backends() {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
		for _, s := range v.Shortcuts {
			if strings.EqualFold(s, name) {
				return v, true
			}
		}
	}
	return Variant{}, false
}

// OpenBackend opens a display with the variant called name. An empty name
// or "any" tries every variant in priority order and returns the first that
// opens. When none opens, the error wraps ErrBackendUnavailable together
// with each variant's failure.
func OpenBackend(name string, win glctx.Window, format video.Format, cfg video.DisplayConfig, opts ...Option) (*Display, error) {
	var candidates []Variant
	if glctx.IsAny(name) {
		candidates = Backends()
	} else {
		v, ok := LookupBackend(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
		candidates = []Variant{v}
	}

	errs := []error{ErrBackendUnavailable}
	for _, v := range candidates {
		d, err := Open(win, format, cfg, append(slices.Clone(opts), WithVariant(v))...)
		if err == nil {
			return d, nil
		}
		logx.Logger().Debug("vout: backend failed", "backend", v.Name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", v.Name, err))
	}
	return nil, errors.Join(errs...)
}
