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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcx/utils/typeexpr"
)

// resetFlags restores the flag globals between tests.
func resetFlags() {
	flagDir = "."
	flagFile = ""
	flagTypes = nil
	flagArgs = ""
	flagWhere = nil
	flagPrefix = ""
	flagOutput = ""
}

func TestResolveSpecsBracketedArgs(t *testing.T) {
	resetFlags()
	defer resetFlags()

	// Commas inside brackets never split: two entries in, two entries
	// out, the instantiation intact.
	require.NoError(t, rootCmd.ParseFlags([]string{"--type", "Store", "--args", "uint32, Pair[A, B]"}))
	specs, err := resolveSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, []string{"uint32", "Pair[A, B]"}, specs[0].Args)

	// A single named entry fixing a position to an instantiation stays
	// one entry.
	resetFlags()
	require.NoError(t, rootCmd.ParseFlags([]string{"--type", "Store", "--args", "T=Pair[A, B]"}))
	specs, err = resolveSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, []string{"T=Pair[A, B]"}, specs[0].Args)
}

func TestResolveSpecsUnbalancedArgs(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagTypes = []string{"Store"}
	flagArgs = "Pair[A"
	_, err := resolveSpecs()
	assert.ErrorIs(t, err, typeexpr.ErrUnbalanced)
}

func TestResolveSpecsNoPerTypeFlagsForBatches(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagTypes = []string{"Shape", "Store"}
	flagArgs = "uint32,_"
	_, err := resolveSpecs()
	assert.Error(t, err)
}
