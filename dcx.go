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

package dcx

import "reflect"

// View is a type-erased handle: the erased value together with its exact
// runtime type. It is the single bridge between "I only know this value
// through an interface" and "I can ask the runtime what concrete type
// this is."
//
// A View is a value type and may be copied freely. It never outlives the
// guarantees of the handle it was erased from.
type View struct {
	// value is the erased value.
	value any
	// rtype is the exact runtime type of value, nil for a nil handle.
	rtype reflect.Type
}

// Erase returns the type-erased view of h.
//
// Every Go type satisfies this capability automatically: conversion to
// the empty interface is the erasure, and reflect.Type comparability is
// the identity primitive. Erase never fails and performs no work beyond
// the interface conversion the caller already paid for.
func Erase(h any) View {
	return View{value: h, rtype: reflect.TypeOf(h)}
}

// Type returns the exact runtime type of the erased value.
// It returns nil for a view erased from a nil handle.
func (v View) Type() reflect.Type {
	return v.rtype
}

// Matches reports whether the erased value's runtime type is exactly t.
// Identity is exact-type only: no supertype, subtype, or structural
// matching, and a nil handle matches nothing.
func (v View) Matches(t reflect.Type) bool {
	return v.rtype != nil && v.rtype == t
}

// Interface returns the erased value.
func (v View) Interface() any {
	return v.value
}

// Is reports whether h's concrete type is exactly Target.
//
// Exactness means a handle holding *Circle is not a Circle (and vice
// versa), and an interface Target never matches: the dynamic type of a
// non-nil handle is always concrete. A nil handle matches nothing.
func Is[Target any](h any) bool {
	return Erase(h).Matches(reflect.TypeOf((*Target)(nil)).Elem())
}

// As converts h to Target.
//
// On mismatch it returns the zero Target and false. The caller's handle
// is untouched either way, so a failed attempt loses nothing and the
// next candidate type can be tried; sequential tries are plain caller
// control flow (if/else chains or a type switch), first match wins.
//
// As covers the owned, borrowed, and shared conversions alike: Go's
// garbage collector unifies those ownership shapes, so the result of a
// successful As carries the same sharing and cross-goroutine guarantees
// as the handle it came from.
func As[Target any](h any) (Target, bool) {
	if !Is[Target](h) {
		var zero Target
		return zero, false
	}
	return h.(Target), true
}

// Mut returns a mutable view of the Target stored in h.
//
// It succeeds only when the handle is pointer-backed, that is when h
// holds a *Target: only then are mutations through the returned pointer
// visible through the original handle. A handle built from a plain
// Target value yields false, because the interface holds a copy that
// cannot be written back.
func Mut[Target any](h any) (*Target, bool) {
	p, ok := h.(*Target)
	return p, ok
}
