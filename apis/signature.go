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

package apis

import "strings"

// TypeParam is one type parameter of a downcastable interface.
type TypeParam struct {
	// Name is the parameter name as declared, e.g. "T".
	Name string
	// Constraint is the constraint expression, verbatim from source
	// unless overridden by a Where clause, e.g. "comparable" or
	// "interface{ ~int | ~string }".
	Constraint string
	// Arg is the concrete type argument fixing this position.
	// Empty means the position stays free and is re-emitted as a
	// type parameter on every generated declaration.
	Arg string
}

// Free reports whether the parameter position is still generic.
func (p TypeParam) Free() bool {
	return p.Arg == ""
}

// Signature describes one downcastable interface declaration: the shape
// the emitter specializes the accessors to. It is produced by a Scanner
// and treated as immutable afterwards.
type Signature struct {
	// Package is the name of the package declaring the interface.
	Package string
	// Name is the interface name, e.g. "Shape".
	Name string
	// Params are the interface's type parameters in declaration
	// order, possibly with positions fixed to concrete arguments.
	Params []TypeParam
	// Pos is the "file:line" of the declaration, for diagnostics.
	Pos string
}

// FreeParams returns the parameters whose positions were not fixed to a
// concrete argument, in declaration order.
func (s Signature) FreeParams() []TypeParam {
	var free []TypeParam
	for _, p := range s.Params {
		if p.Free() {
			free = append(free, p)
		}
	}
	return free
}

// Instantiation returns the interface type expression the accessors
// operate on: the bare name for a plain interface, or the name applied
// to its arguments, with free positions referred to by parameter name.
// Example: "Store[uint32, Item]".
func (s Signature) Instantiation() string {
	if len(s.Params) == 0 {
		return s.Name
	}
	args := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		if p.Free() {
			args = append(args, p.Name)
		} else {
			args = append(args, p.Arg)
		}
	}
	return s.Name + "[" + strings.Join(args, ", ") + "]"
}
