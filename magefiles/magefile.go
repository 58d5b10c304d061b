//go:build mage

// Package main provides build targets for the qryddev project using Mage.
//
// Usage:
//
//	mage build    Compile the qryddev binary to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install qryddev to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "qryddev"
	binaryDir  = "bin"
	cmdDir     = "./cmd/qryddev"
)

// Build compiles the qryddev binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}

	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every test in the module.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install builds first, then installs qryddev to GOPATH/bin.
func Install() error {
	mg.Deps(Build)

	return sh.RunV("go", "install", cmdDir)
}
