//go:build mage

// Package main provides build targets for the dcx project using Mage.
//
// Usage:
//
//	mage build      Compile the dcxgen binary to bin/
//	mage test       Run all tests
//	mage generate   Run go generate across the module
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install dcxgen to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "dcxgen"
	binaryDir  = "bin"
	cmdDir     = "./cmd/dcxgen"
)

// Build compiles the dcxgen binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Generate runs go generate across the module. Builds dcxgen first so
// directives pick up the freshly built binary.
func Generate() error {
	mg.Deps(Build)
	abs, err := filepath.Abs(binaryDir)
	if err != nil {
		return err
	}
	env := map[string]string{"PATH": abs + string(os.PathListSeparator) + os.Getenv("PATH")}
	return sh.RunWithV(env, "go", "generate", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}

// Install installs dcxgen to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
