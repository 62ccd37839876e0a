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

package typeexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcx/utils/typeexpr"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
		err  error
	}{
		{name: "single", in: "uint32", want: []string{"uint32"}},
		{name: "pair", in: "uint32, float32", want: []string{"uint32", "float32"}},
		{name: "free slot", in: "uint32,_", want: []string{"uint32", "_"}},
		{name: "nested brackets", in: "map[string]int, Pair[A, B]", want: []string{"map[string]int", "Pair[A, B]"}},
		{name: "func type", in: "func(a, b int) error, chan struct{}", want: []string{"func(a, b int) error", "chan struct{}"}},
		{name: "empty", in: "", err: typeexpr.ErrEmpty},
		{name: "blank entry", in: "uint32,,float32", err: typeexpr.ErrEmpty},
		{name: "unbalanced open", in: "Pair[A", err: typeexpr.ErrUnbalanced},
		{name: "unbalanced close", in: "A]", err: typeexpr.ErrUnbalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := typeexpr.Split(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want typeexpr.Binding
		err  error
	}{
		{name: "free", in: "_", want: typeexpr.Binding{}},
		{name: "positional", in: "uint32", want: typeexpr.Binding{Type: "uint32"}},
		{name: "named", in: "Item=float32", want: typeexpr.Binding{Name: "Item", Type: "float32"}},
		{name: "named spaced", in: " Item = float32 ", want: typeexpr.Binding{Name: "Item", Type: "float32"}},
		{name: "named bracket type", in: "Item=map[string]int", want: typeexpr.Binding{Name: "Item", Type: "map[string]int"}},
		{name: "empty", in: "", err: typeexpr.ErrEmpty},
		{name: "bad name", in: "3x=int", err: typeexpr.ErrBadName},
		{name: "empty type", in: "Item=", err: typeexpr.ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := typeexpr.ParseBinding(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClause(t *testing.T) {
	name, constraint, err := typeexpr.ParseClause("T comparable")
	require.NoError(t, err)
	assert.Equal(t, "T", name)
	assert.Equal(t, "comparable", constraint)

	name, constraint, err = typeexpr.ParseClause("Item interface{ ~int | ~string }")
	require.NoError(t, err)
	assert.Equal(t, "Item", name)
	assert.Equal(t, "interface{ ~int | ~string }", constraint)

	_, _, err = typeexpr.ParseClause("")
	assert.ErrorIs(t, err, typeexpr.ErrEmpty)

	_, _, err = typeexpr.ParseClause("T")
	assert.ErrorIs(t, err, typeexpr.ErrMalformedClause)

	_, _, err = typeexpr.ParseClause("3x comparable")
	assert.ErrorIs(t, err, typeexpr.ErrBadName)
}

func TestIsIdent(t *testing.T) {
	assert.True(t, typeexpr.IsIdent("T"))
	assert.True(t, typeexpr.IsIdent("Item2"))
	assert.True(t, typeexpr.IsIdent("_hidden"))
	assert.False(t, typeexpr.IsIdent(""))
	assert.False(t, typeexpr.IsIdent("3x"))
	assert.False(t, typeexpr.IsIdent("a.b"))
	assert.False(t, typeexpr.IsIdent("a b"))
}
