/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"path/filepath"
	"strings"

	"dirpx.dev/dcx/apis"
)

const (
	// DefaultDir is the package directory scanned when none is given.
	DefaultDir = "."
	// DefaultOutputSuffix is appended to the lowered interface name to
	// form the default output file name.
	DefaultOutputSuffix = "_dcx.go"
)

// NewConfig constructs an apis.Config from the given options and fills
// in defaults for anything left unset.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{Dir: DefaultDir}
}

// Normalize fills derived defaults: the accessor prefix falls back to
// the interface name and the output path to "<type, lowered>_dcx.go"
// inside the scanned directory.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Prefix == "" {
		cfg.Prefix = cfg.Type
	}
	if cfg.Output == "" && cfg.Type != "" {
		cfg.Output = filepath.Join(cfg.Dir, strings.ToLower(cfg.Type)+DefaultOutputSuffix)
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during
// construction.
type Option func(*apis.Config)

// WithDir sets the package directory to scan.
func WithDir(dir string) Option {
	return func(c *apis.Config) {
		c.Dir = dir
	}
}

// WithFile sets an explicit source file, consulted before the rest of
// the package directory.
func WithFile(file string) Option {
	return func(c *apis.Config) {
		c.File = file
	}
}

// WithType sets the interface name to make downcastable.
func WithType(name string) Option {
	return func(c *apis.Config) {
		c.Type = name
	}
}

// WithPrefix overrides the generated accessor name prefix.
func WithPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.Prefix = prefix
	}
}

// WithOutput overrides the generated file path.
func WithOutput(path string) Option {
	return func(c *apis.Config) {
		c.Output = path
	}
}

// WithArgs fixes type-parameter positions to concrete arguments.
// "_" entries keep a position free; "Name=Type" fixes by name.
func WithArgs(args ...string) Option {
	return func(c *apis.Config) {
		c.Args = args
	}
}

// WithWhere adds extra constraint clauses of the form "Name Constraint".
func WithWhere(clauses ...string) Option {
	return func(c *apis.Config) {
		c.Where = clauses
	}
}
