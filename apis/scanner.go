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

// Scanner locates an interface declaration and models its generic
// signature. Implementations must be safe for sequential reuse across
// multiple Scan calls (dcxgen scans once per --type flag) and should
// cache parsed sources between calls.
type Scanner interface {
	// Scan finds cfg.Type in cfg.Dir (or cfg.File), applies cfg.Args
	// and cfg.Where, and returns the resulting Signature.
	// All failures are generation-time errors; generated code has no
	// runtime failure mode of its own.
	Scan(cfg Config) (Signature, error)
}
