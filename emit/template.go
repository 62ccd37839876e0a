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

package emit

import "text/template"

// accessorTmpl is the single template for a generated accessor file.
// Spacing quirks are gofmt's problem: Emit pipes the rendering through
// go/format before returning it.
var accessorTmpl = template.Must(template.New("accessors").Parse(`// Code generated by dcxgen. DO NOT EDIT.
{{if .Source}}// Source: {{.Source}}
{{end}}
package {{.Package}}

import (
	dcx "{{.Import}}"
)

// {{.Prefix}}Is reports whether h's concrete type is exactly {{.Target}}.
func {{.Prefix}}Is[{{.TargetParams}}](h {{.Iface}}) bool {
	return dcx.Is[{{.Target}}](h)
}

// {{.Prefix}}As converts h to {{.Target}}. On mismatch it returns the
// zero {{.Target}} and false; the original handle is untouched either
// way, so the next candidate type can be tried.
func {{.Prefix}}As[{{.TargetParams}}](h {{.Iface}}) ({{.Target}}, bool) {
	return dcx.As[{{.Target}}](h)
}

// {{.Prefix}}Mut returns a mutable view of the {{.Target}} stored in h.
// It succeeds only when h is pointer-backed, so that mutations through
// the returned pointer are visible through h.
func {{.Prefix}}Mut[{{.MutParams}}](h {{.Iface}}) (*{{.Target}}, bool) {
	p, ok := any(h).({{.Ptr}})
	if !ok {
		return nil, false
	}
	return (*{{.Target}})(p), true
}
`))
