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

package scan

import (
	"go/ast"
	"sync"
)

// fileCache memoizes parsed files by path so that scanning several
// interfaces out of the same package parses each source file once.
// Safe for concurrent use.
type fileCache struct {
	// mu guards write-side consistency and the counter.
	mu sync.Mutex
	// m maps source path to its parsed file.
	m sync.Map // map[string]*ast.File
	// count tracks the number of cached files.
	count int
}

// load returns the cached AST for path, if present.
func (c *fileCache) load(path string) (*ast.File, bool) {
	if v, ok := c.m.Load(path); ok {
		return v.(*ast.File), true
	}
	return nil, false
}

// store caches the AST for path. First store wins; re-parsing the same
// path yields an equivalent tree, so losing the race costs nothing.
func (c *fileCache) store(path string, f *ast.File) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, loaded := c.m.LoadOrStore(path, f); !loaded {
		c.count++
	}
}

// size returns the number of cached files.
func (c *fileCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// reset clears all cached files.
func (c *fileCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}
