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

package dcx_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/dcx"
)

// TestConcurrentAccessors verifies that Is/As/Mut against a shared
// handle are race-free: the accessors keep no state, so a handle handed
// to another goroutine carries exactly the guarantees it had before.
func TestConcurrentAccessors(t *testing.T) {
	var h Shape = &Circle{Radius: 42}

	workers := runtime.GOMAXPROCS(0) * 4
	const iters = 2000

	var wg sync.WaitGroup
	errs := make(chan string, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				if !dcx.Is[*Circle](h) {
					errs <- "Is[*Circle] = false"
					return
				}
				if dcx.Is[*Square](h) {
					errs <- "Is[*Square] = true"
					return
				}
				c, ok := dcx.As[*Circle](h)
				if !ok || c.Radius != 42 {
					errs <- "As[*Circle] lost the value"
					return
				}
				if _, ok := dcx.As[*Square](h); ok {
					errs <- "As[*Square] matched"
					return
				}
				if _, ok := dcx.Mut[Circle](h); !ok {
					errs <- "Mut[Circle] = false"
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
