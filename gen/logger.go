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

package gen

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the gen package's logger instance.
// It uses a no-op logger by default. Safe for concurrent use.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	nop := zap.NewNop()
	if logger.CompareAndSwap(nil, nop) {
		return nop
	}
	return logger.Load()
}

// SetLogger configures the gen package's logger. Safe to call at any
// time, including while pipelines are running. Nil is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger.Store(l)
	}
}
