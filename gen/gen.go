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

// Package gen composes the scan and emit steps into the pipeline dcxgen
// runs once per downcastable interface.
package gen

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/config"
	"dirpx.dev/dcx/emit"
	"dirpx.dev/dcx/scan"
)

// ErrNoOutput is returned by Write when no output path could be
// derived from the configuration.
var ErrNoOutput = errors.New("dcx(gen): no output path configured")

// Pipeline is the scan -> emit -> write flow. A Pipeline is cheap and
// reusable; reusing one across several interfaces of the same package
// shares the scanner's parse cache.
type Pipeline struct {
	sc apis.Scanner
	em apis.Emitter
}

// New constructs a Pipeline with the default scanner and emitter,
// overridable through options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{sc: scan.New(), em: emit.New()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Option overrides one pipeline component during construction.
type Option func(*Pipeline)

// WithScanner replaces the default scanner. Nil is ignored.
func WithScanner(sc apis.Scanner) Option {
	return func(p *Pipeline) {
		if sc != nil {
			p.sc = sc
		}
	}
}

// WithEmitter replaces the default emitter. Nil is ignored.
func WithEmitter(em apis.Emitter) Option {
	return func(p *Pipeline) {
		if em != nil {
			p.em = em
		}
	}
}

// Generate scans cfg.Type and returns the formatted accessor source.
func (p *Pipeline) Generate(cfg apis.Config) ([]byte, error) {
	cfg = config.Normalize(cfg)

	sig, err := p.sc.Scan(cfg)
	if err != nil {
		return nil, err
	}
	Logger().Debug("scanned interface",
		zap.String("type", sig.Name),
		zap.String("pos", sig.Pos),
		zap.Int("params", len(sig.Params)),
		zap.Int("free", len(sig.FreeParams())))

	src, err := p.em.Emit(sig, cfg)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Write runs Generate and writes the result to the configured (or
// derived) output path, which it returns.
func (p *Pipeline) Write(cfg apis.Config) (string, error) {
	cfg = config.Normalize(cfg)

	src, err := p.Generate(cfg)
	if err != nil {
		return "", err
	}
	if cfg.Output == "" {
		return "", ErrNoOutput
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return "", fmt.Errorf("dcx(gen): writing %s: %w", cfg.Output, err)
	}
	Logger().Info("wrote accessors",
		zap.String("type", cfg.Type),
		zap.String("path", cfg.Output),
		zap.Int("bytes", len(src)))
	return cfg.Output, nil
}
