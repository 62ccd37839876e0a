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

package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/dcx/apis"
)

// ErrNoSources is returned when no Go source files are available to
// scan.
var ErrNoSources = errors.New("dcx(scan): no Go source files to scan")

// locator is a pluggable file-discovery step. A chain tries multiple
// locators in order (explicit file first, then the package directory).
type locator interface {
	// files returns candidate source paths in scan order.
	// It returns (nil, nil) to fall through to the next locator.
	files(cfg apis.Config) ([]string, error)
}

// newChain builds an order-preserving locator over the given steps.
// Nil steps are ignored.
func newChain(locs ...locator) locator {
	out := make([]locator, 0, len(locs))
	for _, l := range locs {
		if l != nil {
			out = append(out, l)
		}
	}
	return chain{locs: out}
}

// chain runs locators in order and concatenates their results.
type chain struct {
	locs []locator
}

// files collects candidates from every step, explicit file first.
// It fails only when no step produced anything to scan.
func (c chain) files(cfg apis.Config) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, l := range c.locs {
		paths, err := l.files(cfg)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSources, cfg.Dir)
	}
	return out, nil
}

// fileLocator yields the explicitly configured source file, if any.
type fileLocator struct{}

func (fileLocator) files(cfg apis.Config) ([]string, error) {
	if cfg.File == "" {
		return nil, nil
	}
	if _, err := os.Stat(cfg.File); err != nil {
		return nil, fmt.Errorf("dcx(scan): source file: %w", err)
	}
	return []string{cfg.File}, nil
}

// dirLocator yields the non-test Go files of the package directory in
// lexical order. Test files never declare downcastable interfaces for
// generation, and the previous generated output never re-declares the
// interface, so neither needs special handling beyond the test skip.
type dirLocator struct{}

func (dirLocator) files(cfg apis.Config) ([]string, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dcx(scan): reading %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	return out, nil
}
