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
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".dcxgen"
	configFileType = "yaml"

	// cfgKeyTypes lists the interfaces to generate for, each entry a
	// typeSpec mapping:
	//
	//	types:
	//	  - type: Shape
	//	  - type: Store
	//	    args: [uint32, _]
	//	    where: ["Item fmt.Stringer"]
	//	    prefix: StoreU32
	cfgKeyTypes = "types"
)

// loadSpecs reads .dcxgen.yaml from dir using Viper. A missing config
// file is not an error; it simply yields no specs.
func loadSpecs(dir string) ([]typeSpec, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("dcxgen: read config: %w", err)
	}

	var specs []typeSpec
	if err := v.UnmarshalKey(cfgKeyTypes, &specs); err != nil {
		return nil, fmt.Errorf("dcxgen: parse config: %w", err)
	}
	return specs, nil
}
