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

// Config carries read-only generation knobs for one dcxgen invocation.
// It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// Dir is the package directory to scan for the interface
	// declaration. Defaults to ".".
	Dir string

	// File optionally names one source file. When set it is consulted
	// before the rest of the package directory.
	File string

	// Type is the name of the interface to make downcastable.
	Type string

	// Prefix is prepended to generated accessor names
	// (PrefixIs, PrefixAs, PrefixMut). Defaults to Type.
	Prefix string

	// Output is the path of the generated file. Defaults to
	// "<type, lowered>_dcx.go" inside Dir.
	Output string

	// Args fixes type-parameter positions to concrete arguments.
	// Entries are positional: a concrete type expression fixes the
	// position, "_" keeps it free. "Name=Type" entries fix a position
	// by parameter name instead. Empty means all positions stay free.
	Args []string

	// Where holds extra constraint clauses of the form
	// "Name Constraint". Each replaces the constraint of the named
	// free type parameter on the generated declarations.
	Where []string
}
