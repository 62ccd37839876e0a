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

// Package scan locates an interface declaration in Go source and models
// its generic signature for the emitter. It works on syntax alone: the
// declared constraints are carried verbatim and re-checked by the
// compiler when the generated file is built.
package scan

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/utils/typeexpr"
)

var (
	// ErrNoType is returned when no type name was configured.
	ErrNoType = errors.New("dcx(scan): no interface name provided")
	// ErrTypeNotFound is returned when the named type is not declared
	// in any scanned source file.
	ErrTypeNotFound = errors.New("dcx(scan): interface declaration not found")
	// ErrNotInterface indicates the named type exists but is not an
	// interface.
	ErrNotInterface = errors.New("dcx(scan): type is not an interface")
	// ErrArgCount indicates a positional argument list whose length
	// does not match the interface's type-parameter count.
	ErrArgCount = errors.New("dcx(scan): type argument count mismatch")
	// ErrUnknownParam indicates an argument or constraint clause that
	// names a type parameter the interface does not declare.
	ErrUnknownParam = errors.New("dcx(scan): unknown type parameter")
	// ErrDuplicateArg indicates a position fixed more than once.
	ErrDuplicateArg = errors.New("dcx(scan): type parameter fixed twice")
	// ErrFixedParam indicates a constraint clause on a position that
	// was already fixed to a concrete argument.
	ErrFixedParam = errors.New("dcx(scan): constraint on a fixed type parameter")
)

// New creates an apis.Scanner backed by go/parser. The scanner caches
// parsed files, so scanning several interfaces out of the same package
// parses each source file once.
func New() apis.Scanner {
	return &scanner{
		fset:  token.NewFileSet(),
		files: &fileCache{},
		loc:   newChain(fileLocator{}, dirLocator{}),
	}
}

// scanner is the default Scanner implementation.
type scanner struct {
	fset  *token.FileSet
	files *fileCache
	loc   locator
}

// Ensure scanner implements apis.Scanner.
var _ apis.Scanner = (*scanner)(nil)

// Scan finds cfg.Type, extracts its type-parameter list verbatim, and
// applies cfg.Args and cfg.Where.
func (s *scanner) Scan(cfg apis.Config) (apis.Signature, error) {
	if cfg.Type == "" {
		return apis.Signature{}, ErrNoType
	}
	if !typeexpr.IsIdent(cfg.Type) {
		return apis.Signature{}, fmt.Errorf("%w: %q", ErrNoType, cfg.Type)
	}

	paths, err := s.loc.files(cfg)
	if err != nil {
		return apis.Signature{}, err
	}

	for _, path := range paths {
		f, err := s.parse(path)
		if err != nil {
			return apis.Signature{}, fmt.Errorf("dcx(scan): parsing %s: %w", path, err)
		}
		sig, found, err := s.extract(f, cfg.Type)
		if err != nil {
			return apis.Signature{}, err
		}
		if !found {
			continue
		}
		if err := applyArgs(&sig, cfg.Args); err != nil {
			return apis.Signature{}, err
		}
		if err := applyWhere(&sig, cfg.Where); err != nil {
			return apis.Signature{}, err
		}
		return sig, nil
	}
	return apis.Signature{}, fmt.Errorf("%w: %s in %s", ErrTypeNotFound, cfg.Type, cfg.Dir)
}

// parse returns the AST for path, reusing the cache when possible.
func (s *scanner) parse(path string) (*ast.File, error) {
	if f, ok := s.files.load(path); ok {
		return f, nil
	}
	f, err := parser.ParseFile(s.fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	s.files.store(path, f)
	return f, nil
}

// extract searches one file for the named interface declaration.
func (s *scanner) extract(f *ast.File, name string) (apis.Signature, bool, error) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name == nil || ts.Name.Name != name {
				continue
			}
			pos := s.fset.Position(ts.Pos()).String()
			if _, ok := ts.Type.(*ast.InterfaceType); !ok {
				return apis.Signature{}, false, fmt.Errorf("%s: %w: %s", pos, ErrNotInterface, name)
			}
			params, err := s.typeParams(ts)
			if err != nil {
				return apis.Signature{}, false, err
			}
			return apis.Signature{
				Package: f.Name.Name,
				Name:    name,
				Params:  params,
				Pos:     pos,
			}, true, nil
		}
	}
	return apis.Signature{}, false, nil
}

// typeParams models the declaration's type-parameter list. Constraint
// expressions are rendered verbatim so the emitter can re-emit them
// unchanged on every generated declaration.
func (s *scanner) typeParams(ts *ast.TypeSpec) ([]apis.TypeParam, error) {
	if ts.TypeParams == nil {
		return nil, nil
	}
	var params []apis.TypeParam
	for _, field := range ts.TypeParams.List {
		constraint, err := s.render(field.Type)
		if err != nil {
			return nil, err
		}
		for _, name := range field.Names {
			params = append(params, apis.TypeParam{
				Name:       name.Name,
				Constraint: constraint,
			})
		}
	}
	return params, nil
}

// render prints a constraint expression back to source form.
func (s *scanner) render(expr ast.Expr) (string, error) {
	var b strings.Builder
	if err := printer.Fprint(&b, s.fset, expr); err != nil {
		return "", fmt.Errorf("dcx(scan): rendering constraint: %w", err)
	}
	return b.String(), nil
}

// applyArgs fixes parameter positions to concrete arguments. Unnamed
// entries are positional and must then cover every position ("_" keeps
// one free); "Name=Type" entries fix positions by name in any order.
func applyArgs(sig *apis.Signature, args []string) error {
	if len(args) == 0 {
		return nil
	}

	pos := 0
	for _, raw := range args {
		b, err := typeexpr.ParseBinding(raw)
		if err != nil {
			return fmt.Errorf("dcx(scan): argument %q: %w", raw, err)
		}

		switch {
		case b.Name != "":
			i := paramIndex(sig.Params, b.Name)
			if i < 0 {
				return fmt.Errorf("%w: %s has no parameter %s", ErrUnknownParam, sig.Name, b.Name)
			}
			if !sig.Params[i].Free() {
				return fmt.Errorf("%w: %s", ErrDuplicateArg, b.Name)
			}
			sig.Params[i].Arg = b.Type

		default:
			if pos >= len(sig.Params) {
				return fmt.Errorf("%w: %s declares %d, got more", ErrArgCount, sig.Name, len(sig.Params))
			}
			if b.Type != "" {
				if !sig.Params[pos].Free() {
					return fmt.Errorf("%w: %s", ErrDuplicateArg, sig.Params[pos].Name)
				}
				sig.Params[pos].Arg = b.Type
			}
			pos++
		}
	}

	// A positional list must say something about every position.
	if pos > 0 && pos != len(sig.Params) {
		return fmt.Errorf("%w: %s declares %d, got %d", ErrArgCount, sig.Name, len(sig.Params), pos)
	}
	return nil
}

// applyWhere replaces constraints of free parameters with the clauses'
// constraints. Clauses never widen silently: naming an unknown or fixed
// parameter is an error.
func applyWhere(sig *apis.Signature, clauses []string) error {
	for _, raw := range clauses {
		name, constraint, err := typeexpr.ParseClause(raw)
		if err != nil {
			return fmt.Errorf("dcx(scan): clause %q: %w", raw, err)
		}
		i := paramIndex(sig.Params, name)
		if i < 0 {
			return fmt.Errorf("%w: %s has no parameter %s", ErrUnknownParam, sig.Name, name)
		}
		if !sig.Params[i].Free() {
			return fmt.Errorf("%w: %s", ErrFixedParam, name)
		}
		sig.Params[i].Constraint = constraint
	}
	return nil
}

// paramIndex returns the index of the named parameter, or -1.
func paramIndex(params []apis.TypeParam, name string) int {
	for i, p := range params {
		if p.Name == name {
			return i
		}
	}
	return -1
}
