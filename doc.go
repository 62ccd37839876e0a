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

// Package dcx provides safe downcasting for interface-erased values.
//
// Go interfaces are great for heterogeneous collections: a slice of
// user-defined types stored behind a single interface handle. Some call
// sites occasionally need the concrete type back to reach the extra,
// type-specific behavior or data that only the concrete type exposes.
// dcx provides that downcasting support with exact runtime type
// identity, no unsafe casts, and compile-time-checked target bounds for
// generated per-interface accessors.
//
// # Design
//
// dcx is two layers:
//
//   - The identity capability: Erase(h) returns a View, a type-erased
//     handle pairing the value with its exact reflect.Type. Every Go
//     type satisfies the capability automatically; conversion to the
//     empty interface is the erasure and reflect.Type comparability is
//     the identity primitive. Nothing is ever implemented by hand.
//
//   - The accessor family: Is, As, and Mut perform the runtime type
//     check and the conversion. Is is the pure test; As converts and
//     returns (zero, false) on mismatch; Mut yields a mutable *Target
//     view for pointer-backed handles.
//
// Identity is exact-type only. There is no supertype or structural
// matching, no downcasting through multiple layers of interface
// abstraction, and no comparison of two differently-typed handles:
// every operation tests exactly one caller-chosen concrete type.
//
// # Generated accessors
//
// The accompanying dcxgen command (cmd/dcxgen) generates per-interface
// accessors at declaration sites:
//
//	//go:generate dcxgen --type Shape
//
// produces ShapeIs, ShapeAs, and ShapeMut whose Target parameter is
// constrained to implement Shape, so downcasting to a type that does
// not implement the interface is rejected at compile time rather than
// at run time. dcxgen supports interfaces with free type parameters,
// concretely-fixed type arguments (--args), and extra constraint
// clauses (--where); author-declared constraints are re-emitted
// verbatim on every generated declaration. See the scan, emit, and gen
// packages for the pipeline, and apis for its contracts.
//
// # Failure model
//
// There is exactly one runtime error condition in the whole package:
// the requested concrete type does not match the actual one. It is
// always a typed, recoverable result (a false second return), never a
// panic, and a failed attempt never consumes or corrupts the original
// handle. Everything else that could go wrong (unknown interface,
// malformed type arguments) is rejected when dcxgen runs, so it never
// reaches compiled code.
//
// # Ownership shapes
//
// Languages that model exclusive, borrowed, and reference-counted
// ownership as distinct types need one accessor per shape. Go's garbage
// collector unifies them, so dcx carries a single family and the
// cross-goroutine safety of a successful conversion is always exactly
// that of the source handle: the conversion introduces no hidden
// aliasing of its own. Mutable access remains the caller's concern;
// store a pointer in the interface when mutation through the handle is
// required, and Mut will recover it.
//
// # Concurrency model
//
// Every operation is synchronous, non-blocking, and O(1): one identity
// comparison plus one interface conversion. Is, As, and Mut take no
// locks and keep no state, so concurrent calls against a shared handle
// are safe; whether concurrent mutation through Mut results is safe is
// a property of the concrete type, exactly as for any other Go pointer.
//
// # Scope
//
// dcx is intentionally small. It only solves one job:
//
//	"Given a value known only through an interface, recover the
//	 concrete type safely, or learn definitively that it is not the
//	 type you asked for."
//
// Registries, priority orderings, and serialization belong to higher
// layers; sequential tries against candidate types are plain caller
// control flow, first match wins.
package dcx
