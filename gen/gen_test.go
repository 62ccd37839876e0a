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

package gen_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/config"
	"dirpx.dev/dcx/gen"
	"dirpx.dev/dcx/scan"
)

const fixtureSrc = `package shapes

type Shape interface {
	Area() float64
}

type Store[T comparable, Item any] interface {
	Put(key T, item Item)
	Len() int
}
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes.go"), []byte(fixtureSrc), 0o644))
	return dir
}

func TestPipelineWrite(t *testing.T) {
	dir := writeFixture(t)

	path, err := gen.New().Write(config.NewConfig(
		config.WithDir(dir),
		config.WithType("Shape"),
	))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shape_dcx.go"), path)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by dcxgen. DO NOT EDIT.")
	assert.Contains(t, string(src), "package shapes")
	assert.Contains(t, string(src), "func ShapeIs[Target Shape](h Shape) bool {")
}

func TestPipelineSharedScanCache(t *testing.T) {
	dir := writeFixture(t)
	p := gen.New()

	for _, typ := range []string{"Shape", "Store"} {
		_, err := p.Write(apis.Config{Dir: dir, Type: typ})
		require.NoError(t, err)
	}

	src, err := os.ReadFile(filepath.Join(dir, "store_dcx.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "func StoreIs[Target Store[T, Item], T comparable, Item any](h Store[T, Item]) bool {")
}

func TestPipelineArgsAndWhere(t *testing.T) {
	dir := writeFixture(t)

	src, err := gen.New().Generate(apis.Config{
		Dir:   dir,
		Type:  "Store",
		Args:  []string{"uint32", "_"},
		Where: []string{"Item fmt.Stringer"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), "func StoreIs[Target Store[uint32, Item], Item fmt.Stringer](h Store[uint32, Item]) bool {")
}

func TestPipelineScanFailure(t *testing.T) {
	dir := writeFixture(t)

	_, err := gen.New().Generate(apis.Config{Dir: dir, Type: "Missing"})
	assert.ErrorIs(t, err, scan.ErrTypeNotFound)

	_, err = gen.New().Write(apis.Config{Dir: dir, Type: "Missing"})
	assert.ErrorIs(t, err, scan.ErrTypeNotFound)
}

// Pipeline components are pluggable; the fakes below stand in for the
// scan and emit steps.

type fakeScanner struct {
	sig apis.Signature
}

func (f fakeScanner) Scan(apis.Config) (apis.Signature, error) { return f.sig, nil }

type fakeEmitter struct {
	out []byte
}

func (f fakeEmitter) Emit(apis.Signature, apis.Config) ([]byte, error) { return f.out, nil }

func TestPipelineOverrides(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom_dcx.go")

	p := gen.New(
		gen.WithScanner(fakeScanner{sig: apis.Signature{Package: "p", Name: "I"}}),
		gen.WithEmitter(fakeEmitter{out: []byte("package p\n")}),
	)

	path, err := p.Write(apis.Config{Type: "I", Output: out})
	require.NoError(t, err)
	assert.Equal(t, out, path)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "package p\n", string(src))

	// Nil options leave the defaults in place.
	q := gen.New(gen.WithScanner(nil), gen.WithEmitter(nil))
	fix := writeFixture(t)
	_, err = q.Generate(apis.Config{Dir: fix, Type: "Shape"})
	assert.NoError(t, err)
}

func TestPipelineNoOutput(t *testing.T) {
	p := gen.New(
		gen.WithScanner(fakeScanner{sig: apis.Signature{Package: "p", Name: "I"}}),
		gen.WithEmitter(fakeEmitter{out: []byte("package p\n")}),
	)

	// No type and no output path: nothing to derive a file name from.
	_, err := p.Write(apis.Config{})
	assert.ErrorIs(t, err, gen.ErrNoOutput)
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, gen.Logger())

	gen.SetLogger(zap.NewNop())
	assert.NotNil(t, gen.Logger())

	gen.SetLogger(nil)
	assert.NotNil(t, gen.Logger())
}

func TestLoggerConcurrentSet(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				gen.SetLogger(zap.NewNop())
				if gen.Logger() == nil {
					t.Error("Logger() = nil")
					return
				}
			}
		}()
	}
	wg.Wait()
}
