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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dcx/apis"
	"dirpx.dev/dcx/gen"
	"dirpx.dev/dcx/utils/typeexpr"
)

// errNothingToDo is returned when neither --type flags nor a config
// file provided any interfaces to generate for.
var errNothingToDo = errors.New("dcxgen: nothing to generate; pass --type or list types in .dcxgen.yaml")

// Global flag values.
var (
	flagDir     string
	flagFile    string
	flagTypes   []string
	flagArgs    string
	flagWhere   []string
	flagPrefix  string
	flagOutput  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dcxgen",
	Short: "dcxgen generates downcast accessors for Go interfaces",
	Long: `dcxgen generates per-interface downcast accessors (Is, As, Mut)
whose target type is compile-time-bound to implement the interface.

Invoke it from a go:generate directive next to the declaration:

	//go:generate dcxgen --type Shape

Interfaces with type parameters keep their parameter list, constraints
re-emitted verbatim, on every generated declaration. Positions can be
fixed to concrete arguments:

	dcxgen --type Store --args uint32,_            # T fixed, Item free
	dcxgen --type Store --args 'uint32,Item=float32'

and extra constraint clauses compose with either form:

	dcxgen --type Store --where 'Item fmt.Stringer'

Without --type, interfaces are read from .dcxgen.yaml in the scanned
directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flagVerbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("dcxgen: logger: %w", err)
		}
		gen.SetLogger(l)
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagDir, "dir", ".", "package directory to scan")
	rootCmd.Flags().StringVar(&flagFile, "file", "", "source file to consult before the package directory")
	rootCmd.Flags().StringArrayVar(&flagTypes, "type", nil, "interface name to generate accessors for (repeatable)")
	rootCmd.Flags().StringVar(&flagArgs, "args", "", "comma-separated concrete type arguments; '_' keeps a position free, 'Name=Type' fixes by name; commas inside brackets do not split")
	rootCmd.Flags().StringArrayVar(&flagWhere, "where", nil, "extra constraint clause 'Name Constraint' (repeatable)")
	rootCmd.Flags().StringVar(&flagPrefix, "prefix", "", "accessor name prefix (default: the interface name)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "output file (default: <type, lowered>_dcx.go in --dir)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable diagnostic logging")
}

func run(cmd *cobra.Command, _ []string) error {
	specs, err := resolveSpecs()
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return errNothingToDo
	}

	// One pipeline for the whole run: types from the same package
	// share the scanner's parse cache.
	p := gen.New()
	for _, s := range specs {
		path, err := p.Write(s.config())
		if err != nil {
			return fmt.Errorf("dcxgen: %s: %w", s.Type, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dcxgen: wrote %s\n", path)
	}
	return nil
}

// resolveSpecs assembles the generation specs for this run: the --type
// flags when present, the config file otherwise.
func resolveSpecs() ([]typeSpec, error) {
	if len(flagTypes) > 0 {
		if len(flagTypes) > 1 && perTypeFlagsSet() {
			return nil, errors.New("dcxgen: --args/--where/--prefix/--output need exactly one --type; use .dcxgen.yaml for batches")
		}
		args, err := splitArgs(flagArgs)
		if err != nil {
			return nil, err
		}
		specs := make([]typeSpec, 0, len(flagTypes))
		for _, name := range flagTypes {
			specs = append(specs, typeSpec{
				Type:   name,
				Args:   args,
				Where:  flagWhere,
				Prefix: flagPrefix,
				Output: flagOutput,
			})
		}
		return specs, nil
	}
	return loadSpecs(flagDir)
}

// splitArgs splits the --args value at top-level commas only, so a
// single entry can fix a position to a generic instantiation like
// "T=Pair[A, B]".
func splitArgs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	args, err := typeexpr.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("dcxgen: --args: %w", err)
	}
	return args, nil
}

// perTypeFlagsSet reports whether any flag that only makes sense for a
// single interface was given.
func perTypeFlagsSet() bool {
	return flagArgs != "" || len(flagWhere) > 0 || flagPrefix != "" || flagOutput != ""
}

// typeSpec is one interface to generate accessors for, from flags or
// from the config file.
type typeSpec struct {
	Type   string   `mapstructure:"type"`
	Args   []string `mapstructure:"args"`
	Where  []string `mapstructure:"where"`
	Prefix string   `mapstructure:"prefix"`
	Output string   `mapstructure:"output"`
}

// config maps the spec onto the pipeline configuration.
func (s typeSpec) config() apis.Config {
	return apis.Config{
		Dir:    flagDir,
		File:   flagFile,
		Type:   s.Type,
		Args:   s.Args,
		Where:  s.Where,
		Prefix: s.Prefix,
		Output: s.Output,
	}
}
