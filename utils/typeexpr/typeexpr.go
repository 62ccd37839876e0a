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

// Package typeexpr parses the small type-expression fragments dcxgen
// accepts on its command line: comma-separated type-argument lists and
// "Name Constraint" clauses. It works on syntax only; whether an
// expression names a real type is settled later by the compiler when
// the generated file is built.
package typeexpr

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrEmpty is returned when an expression or clause is blank.
	ErrEmpty = errors.New("typeexpr: empty expression")
	// ErrUnbalanced indicates unbalanced brackets in an expression.
	ErrUnbalanced = errors.New("typeexpr: unbalanced brackets")
	// ErrMalformedClause indicates a constraint clause that is not of
	// the form "Name Constraint".
	ErrMalformedClause = errors.New("typeexpr: malformed constraint clause")
	// ErrBadName indicates a type-parameter name that is not a valid
	// Go identifier.
	ErrBadName = errors.New("typeexpr: invalid type parameter name")
)

// Free is the placeholder that keeps a type-parameter position free in
// a positional argument list.
const Free = "_"

// Split splits a comma-separated list of type expressions, honoring
// nesting inside [], (), and {} so that "map[string]int, Pair[A, B]"
// yields exactly two entries. Entries are whitespace-trimmed and must
// be non-empty.
func Split(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmpty
	}

	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
			if depth < 0 {
				return nil, ErrUnbalanced
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ErrUnbalanced
	}
	out = append(out, s[start:])

	for i, e := range out {
		e = strings.TrimSpace(e)
		if e == "" {
			return nil, ErrEmpty
		}
		out[i] = e
	}
	return out, nil
}

// Binding is one parsed type-argument entry.
type Binding struct {
	// Name is the parameter name for "Name=Type" entries, empty for
	// positional entries.
	Name string
	// Type is the concrete type expression, empty when the position
	// stays free.
	Type string
}

// ParseBinding parses one argument entry: "_" keeps the position free,
// a bare type expression fixes it positionally, and "Name=Type" fixes
// the named parameter.
func ParseBinding(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Binding{}, ErrEmpty
	}
	if s == Free {
		return Binding{}, nil
	}

	if i := topLevelIndex(s, '='); i >= 0 {
		name := strings.TrimSpace(s[:i])
		typ := strings.TrimSpace(s[i+1:])
		if !IsIdent(name) {
			return Binding{}, ErrBadName
		}
		if typ == "" {
			return Binding{}, ErrEmpty
		}
		return Binding{Name: name, Type: typ}, nil
	}
	return Binding{Type: s}, nil
}

// ParseClause parses a constraint clause "Name Constraint", where the
// constraint may itself contain spaces ("interface{ ~int | ~string }").
func ParseClause(s string) (name, constraint string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", ErrEmpty
	}
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return "", "", ErrMalformedClause
	}
	name = s[:i]
	constraint = strings.TrimSpace(s[i:])
	if !IsIdent(name) {
		return "", "", ErrBadName
	}
	if constraint == "" {
		return "", "", ErrMalformedClause
	}
	return name, constraint, nil
}

// IsIdent reports whether s is a valid Go identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// topLevelIndex returns the index of the first occurrence of sep that
// is not nested inside brackets, or -1.
func topLevelIndex(s string, sep rune) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case sep:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
