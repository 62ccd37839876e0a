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

// Emitter renders the generated accessor source for one Signature.
// Implementations return gofmt-formatted source ready to be written to
// disk, and must not perform any I/O themselves.
type Emitter interface {
	// Emit renders the accessors for sig according to cfg.
	Emit(sig Signature, cfg Config) ([]byte, error)
}
