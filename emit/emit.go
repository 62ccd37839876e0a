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

// Package emit renders the generated accessor source for a scanned
// interface signature. Output is always gofmt-formatted; a rendering
// that does not format is a bug in the template, never in the adopting
// codebase.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"

	"dirpx.dev/dcx/apis"
)

var (
	// ErrNoPackage is returned when the signature carries no package
	// name to emit into.
	ErrNoPackage = errors.New("dcx(emit): signature has no package name")
	// ErrNoPrefix is returned when no accessor name prefix is
	// configured.
	ErrNoPrefix = errors.New("dcx(emit): no accessor prefix configured")
	// ErrFormat indicates the rendered source failed gofmt. This is an
	// internal template bug, reported with the offending source.
	ErrFormat = errors.New("dcx(emit): rendered source does not format")
)

// corePath is the import path of the accessor core the generated file
// delegates to.
const corePath = "dirpx.dev/dcx"

// New creates the default apis.Emitter.
func New() apis.Emitter {
	return emitter{}
}

// emitter renders accessors from the package template.
type emitter struct{}

// Ensure emitter implements apis.Emitter.
var _ apis.Emitter = (*emitter)(nil)

// Emit renders the accessor file for sig.
func (emitter) Emit(sig apis.Signature, cfg apis.Config) ([]byte, error) {
	if sig.Package == "" {
		return nil, ErrNoPackage
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = sig.Name
	}
	if prefix == "" {
		return nil, ErrNoPrefix
	}

	d := data{
		Package: sig.Package,
		Import:  corePath,
		Prefix:  prefix,
		Iface:   sig.Instantiation(),
		Source:  sig.Pos,
		Target:  pickIdent("Target", sig.Params),
		Free:    sig.FreeParams(),
	}
	d.Ptr = pickIdent(d.Target+"Ptr", sig.Params)

	var buf bytes.Buffer
	if err := accessorTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("dcx(emit): rendering %s: %w", sig.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v\n%s", ErrFormat, err, buf.String())
	}
	return src, nil
}

// data is the template payload for one accessor file.
type data struct {
	Package string
	Import  string
	Prefix  string
	// Iface is the interface type expression the accessors operate
	// on, e.g. "Shape" or "Store[uint32, Item]".
	Iface string
	// Source is the declaration position recorded in the header.
	Source string
	// Target and Ptr are the generated type-parameter names, chosen
	// to not collide with the interface's own parameters.
	Target string
	Ptr    string
	// Free are the re-emitted free type parameters, constraints
	// verbatim.
	Free []apis.TypeParam
}

// FreeList renders the re-emitted parameter list suffix,
// e.g. ", T comparable, Item any".
func (d data) FreeList() string {
	var b strings.Builder
	for _, p := range d.Free {
		b.WriteString(", ")
		b.WriteString(p.Name)
		b.WriteString(" ")
		b.WriteString(p.Constraint)
	}
	return b.String()
}

// TargetParams renders the type-parameter list of Is and As.
func (d data) TargetParams() string {
	return d.Target + " " + d.Iface + d.FreeList()
}

// MutParams renders the type-parameter list of Mut. The pointer
// parameter binds "*Target implements the interface", which is the
// correct bound for pointer-receiver implementers; its value is
// inferred from Target at call sites.
func (d data) MutParams() string {
	return d.Target + " any, " + d.Ptr + " interface{ *" + d.Target + "; " + d.Iface + " }" + d.FreeList()
}

// pickIdent returns want unless it collides with a declared parameter
// name, in which case a numbered variant is chosen.
func pickIdent(want string, params []apis.TypeParam) string {
	name := want
	for n := 0; ; n++ {
		if n > 0 {
			name = fmt.Sprintf("%s%d", want, n)
		}
		if !collides(name, params) {
			return name
		}
	}
}

func collides(name string, params []apis.TypeParam) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}
