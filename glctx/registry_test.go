// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glctx

import (
	"errors"
	"testing"
)

// mockContext implements Context for testing.
type mockContext struct {
	api      API
	provider string
}

func (c *mockContext) API() API           { return c.api }
func (c *mockContext) MakeCurrent() error { return nil }
func (c *mockContext) ReleaseCurrent()    {}
func (c *mockContext) Resize(int, int)    {}
func (c *mockContext) SwapBuffers()       {}
func (c *mockContext) Release()           {}

// mockProvider implements Provider for testing.
type mockProvider struct {
	name    string
	apis    []API
	kinds   []WindowKind
	fail    error
	created int
}

func (p *mockProvider) Name() string { return p.name }

func (p *mockProvider) Supports(api API, kind WindowKind) bool {
	okAPI := len(p.apis) == 0
	for _, a := range p.apis {
		if a == api {
			okAPI = true
		}
	}
	okKind := len(p.kinds) == 0
	for _, k := range p.kinds {
		if k == kind {
			okKind = true
		}
	}
	return okAPI && okKind
}

func (p *mockProvider) Create(_ Window, api API) (Context, error) {
	if p.fail != nil {
		return nil, p.fail
	}
	p.created++
	return &mockContext{api: api, provider: p.name}, nil
}

func providerOf(t *testing.T, ctx Context) string {
	t.Helper()
	mc, ok := ctx.(*mockContext)
	if !ok {
		t.Fatalf("context is %T, want *mockContext", ctx)
	}
	return mc.provider
}

// TestRegistryList tests listing providers by priority.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{name: "low"}, 10)
	r.Register(&mockProvider{name: "high"}, 100)
	r.Register(&mockProvider{name: "mid"}, 50)

	list := r.List()
	want := []string{"high", "mid", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}
}

// TestRegistryUnregister tests provider removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{name: "temp"}, 10)
	if _, ok := r.Get("temp"); !ok {
		t.Fatal("provider should exist before unregister")
	}
	r.Unregister("TEMP")
	if _, ok := r.Get("temp"); ok {
		t.Error("provider should not exist after unregister")
	}
}

// TestRegistryCreateAny tests priority selection for "" and "any".
func TestRegistryCreateAny(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{name: "egl"}, 50)
	r.Register(&mockProvider{name: "glx", kinds: []WindowKind{WindowXID}}, 100)

	for _, name := range []string{"", "any", "ANY", " any "} {
		ctx, err := r.Create(Window{Kind: WindowXID}, OpenGL, name)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
		if got := providerOf(t, ctx); got != "glx" {
			t.Errorf("Create(%q) used %s, want glx", name, got)
		}
	}

	// glx does not support wayland windows; egl takes over.
	ctx, err := r.Create(Window{Kind: WindowWayland}, OpenGL, "")
	if err != nil {
		t.Fatalf("Create(wayland) error = %v", err)
	}
	if got := providerOf(t, ctx); got != "egl" {
		t.Errorf("Create(wayland) used %s, want egl", got)
	}
}

// TestRegistryCreateAnyFallback tests falling through failing providers.
func TestRegistryCreateAnyFallback(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{name: "broken", fail: errors.New("driver missing")}, 100)
	r.Register(&mockProvider{name: "good"}, 10)

	ctx, err := r.Create(Window{}, GLES2, AnyProvider)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := providerOf(t, ctx); got != "good" {
		t.Errorf("Create() used %s, want good", got)
	}
	if ctx.API() != GLES2 {
		t.Errorf("API() = %v, want GLES2", ctx.API())
	}
}

// TestRegistryCreateNamed tests explicit provider selection.
func TestRegistryCreateNamed(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{name: "glx", apis: []API{OpenGL}}, 100)
	r.Register(&mockProvider{name: "egl"}, 50)

	ctx, err := r.Create(Window{}, OpenGL, "EGL")
	if err != nil {
		t.Fatalf("Create(EGL) error = %v", err)
	}
	if got := providerOf(t, ctx); got != "egl" {
		t.Errorf("Create(EGL) used %s, want egl", got)
	}

	_, err = r.Create(Window{}, OpenGL, "wgl")
	var notFound *ProviderNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Create(wgl) error = %v, want ProviderNotFoundError", err)
	}
	if notFound.Name != "wgl" {
		t.Errorf("ProviderNotFoundError.Name = %q, want wgl", notFound.Name)
	}

	_, err = r.Create(Window{}, GLES2, "glx")
	var unsupported *ProviderUnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Create(glx, GLES2) error = %v, want ProviderUnsupportedError", err)
	}
}

// TestRegistryCreateList tests comma-separated provider lists.
func TestRegistryCreateList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{name: "glx", fail: errors.New("no GLX")}, 100)
	r.Register(&mockProvider{name: "egl"}, 50)

	ctx, err := r.Create(Window{}, OpenGL, "wgl,glx,egl")
	if err != nil {
		t.Fatalf("Create(list) error = %v", err)
	}
	if got := providerOf(t, ctx); got != "egl" {
		t.Errorf("Create(list) used %s, want egl", got)
	}

	_, err = r.Create(Window{}, OpenGL, "wgl,glx")
	var notFound *ProviderNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Create(wgl,glx) error = %v, want to contain ProviderNotFoundError", err)
	}
}

// TestRegistryCreateEmpty tests the no-provider error.
func TestRegistryCreateEmpty(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create(Window{}, OpenGL, "")
	if !errors.Is(err, ErrNoProvider) {
		t.Errorf("Create() on empty registry error = %v, want ErrNoProvider", err)
	}

	r.Register(&mockProvider{name: "broken", fail: errors.New("boom")}, 1)
	_, err = r.Create(Window{}, OpenGL, "any")
	if !errors.Is(err, ErrNoProvider) {
		t.Errorf("Create() with only failing providers error = %v, want ErrNoProvider", err)
	}
}

func TestIsAny(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", true},
		{"any", true},
		{"Any", true},
		{"glx", false},
		{"anyway", false},
	}
	for _, tt := range tests {
		if got := IsAny(tt.name); got != tt.want {
			t.Errorf("IsAny(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
