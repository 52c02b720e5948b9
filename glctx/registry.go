// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/vout/internal/logx"
)

// AnyProvider is the provider name that selects the best available provider.
const AnyProvider = "any"

// Errors.
var (
	// ErrNoProvider is returned when no registered provider can create a
	// context for the requested API and window kind.
	ErrNoProvider = errors.New("glctx: no provider available")
)

// ProviderNotFoundError indicates a named provider is not registered.
type ProviderNotFoundError struct {
	Name string
}

func (e *ProviderNotFoundError) Error() string {
	return "glctx: provider not found: " + e.Name
}

// ProviderUnsupportedError indicates a provider exists but cannot serve the
// requested API on the requested window kind.
type ProviderUnsupportedError struct {
	Name string
	API  API
	Kind WindowKind
}

func (e *ProviderUnsupportedError) Error() string {
	return fmt.Sprintf("glctx: provider %s does not support %s on %s windows", e.Name, e.API, e.Kind)
}

// RegistryEntry is a registered provider.
type RegistryEntry struct {
	Provider Provider

	// Priority determines selection order (higher = preferred).
	Priority int
}

// Registry manages registered context providers.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

var globalRegistry = NewRegistry()

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Create.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Default returns the global registry.
func Default() *Registry {
	return globalRegistry
}

// Register adds p to the global registry.
func Register(p Provider, priority int) {
	globalRegistry.Register(p, priority)
}

// Unregister removes the named provider from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Create creates a context through the global registry.
func Create(win Window, api API, name string) (Context, error) {
	return globalRegistry.Create(win, api, name)
}

// foldName normalizes a provider name for lookup.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// IsAny reports whether name requests automatic provider selection:
// the empty string or "any", compared case-insensitively.
func IsAny(name string) bool {
	n := foldName(name)
	return n == "" || n == AnyProvider
}

// Register adds p under p.Name(). Registering an existing name replaces it.
func (r *Registry) Register(p Provider, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[foldName(p.Name())] = &RegistryEntry{Provider: p, Priority: priority}
}

// Unregister removes the named provider.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, foldName(name))
}

// Get returns the named entry.
func (r *Registry) Get(name string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[foldName(name)]
	if !ok {
		return RegistryEntry{}, false
	}
	return *e, true
}

// List returns the registered provider names sorted by priority, highest first.
func (r *Registry) List() []string {
	entries := r.sorted()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Provider.Name()
	}
	return names
}

// Create creates a context of api on win.
//
// name is a comma-separated list of provider names tried in order. The
// empty string and "any" stand for every registered provider that supports
// api on win.Kind, in priority order.
func (r *Registry) Create(win Window, api API, name string) (Context, error) {
	var errs []error
	for _, item := range strings.Split(name, ",") {
		if IsAny(item) {
			ctx, err := r.createAny(win, api)
			if err == nil {
				return ctx, nil
			}
			errs = append(errs, err)
			continue
		}
		ctx, err := r.createNamed(win, api, item)
		if err == nil {
			return ctx, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (r *Registry) createNamed(win Window, api API, name string) (Context, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, &ProviderNotFoundError{Name: strings.TrimSpace(name)}
	}
	p := e.Provider
	if !p.Supports(api, win.Kind) {
		return nil, &ProviderUnsupportedError{Name: p.Name(), API: api, Kind: win.Kind}
	}
	ctx, err := p.Create(win, api)
	if err != nil {
		return nil, fmt.Errorf("glctx: %s: %w", p.Name(), err)
	}
	logx.Logger().Debug("glctx: context created", slog.String("provider", p.Name()), slog.String("api", api.String()))
	return ctx, nil
}

func (r *Registry) createAny(win Window, api API) (Context, error) {
	var errs []error
	for _, e := range r.sorted() {
		p := e.Provider
		if !p.Supports(api, win.Kind) {
			continue
		}
		ctx, err := p.Create(win, api)
		if err == nil {
			logx.Logger().Debug("glctx: context created", slog.String("provider", p.Name()), slog.String("api", api.String()))
			return ctx, nil
		}
		logx.Logger().Debug("glctx: provider failed", slog.String("provider", p.Name()), slog.Any("error", err))
		errs = append(errs, fmt.Errorf("glctx: %s: %w", p.Name(), err))
	}
	if len(errs) == 0 {
		return nil, ErrNoProvider
	}
	return nil, errors.Join(append([]error{ErrNoProvider}, errs...)...)
}

// sorted returns a snapshot of the entries ordered by priority, highest first.
// Equal priorities are ordered by name so selection is deterministic.
func (r *Registry) sorted() []RegistryEntry {
	r.mu.RLock()
	entries := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, *e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Provider.Name() < entries[j].Provider.Name()
	})
	return entries
}
