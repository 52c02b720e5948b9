// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vout/renderer"
)

// ErrConfigFormat is returned for configuration files with an unknown
// extension.
var ErrConfigFormat = errors.New("vout: unsupported config format")

// FileConfig is the on-disk form of the display settings. Unset fields
// keep their defaults.
type FileConfig struct {
	// Backend is a variant name, shortcut or "any".
	Backend string `toml:"backend" yaml:"backend"`

	// Provider is the context provider request, for example "glfw,any".
	Provider string `toml:"provider" yaml:"provider"`

	Equirectangular *bool    `toml:"equirectangular-projection" yaml:"equirectangular-projection"`
	AlphaBlend      *bool    `toml:"alpha-blend-projection" yaml:"alpha-blend-projection"`
	FitToDisplay    *bool    `toml:"alpha-blend-fit-to-display" yaml:"alpha-blend-fit-to-display"`
	ShowDivider     *bool    `toml:"alpha-blend-show-divider" yaml:"alpha-blend-show-divider"`
	EnableBlend     *bool    `toml:"alpha-blend-enable-blend" yaml:"alpha-blend-enable-blend"`
	FrontOverlap    *float32 `toml:"alpha-blend-ratio-front" yaml:"alpha-blend-ratio-front"`
	RearOverlap     *float32 `toml:"alpha-blend-ratio-rear" yaml:"alpha-blend-ratio-rear"`
}

// LoadConfig reads a configuration file. The format is chosen by
// extension: .toml, or .yaml/.yml.
func LoadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("vout: read config: %w", err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes data in the format named by ext (".toml", ".yaml"
// or ".yml"; the leading dot is optional).
func ParseConfig(data []byte, ext string) (FileConfig, error) {
	var fc FileConfig
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("vout: parse toml config: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("vout: parse yaml config: %w", err)
		}
	default:
		return FileConfig{}, fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}
	return fc, nil
}

// Projection overlays the file settings on the default projection and
// clamps the overlap ratios.
func (c FileConfig) Projection() renderer.Projection {
	p := renderer.DefaultProjection()
	setBool(&p.Equirectangular, c.Equirectangular)
	setBool(&p.AlphaBlend, c.AlphaBlend)
	setBool(&p.FitToDisplay, c.FitToDisplay)
	setBool(&p.ShowDivider, c.ShowDivider)
	setBool(&p.EnableBlend, c.EnableBlend)
	if c.FrontOverlap != nil {
		p.FrontOverlap = *c.FrontOverlap
	}
	if c.RearOverlap != nil {
		p.RearOverlap = *c.RearOverlap
	}
	return p.Clamp()
}

// Options returns the Open options described by the file. The backend
// field is not included; pass it to OpenBackend.
func (c FileConfig) Options() []Option {
	opts := []Option{WithProjection(c.Projection())}
	if c.Provider != "" {
		opts = append(opts, WithProviderName(c.Provider))
	}
	return opts
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
