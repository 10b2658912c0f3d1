//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the palabra binary into ./bin
func Build() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	fmt.Println("Building palabra...")
	return sh.RunV("go", "build", "-o", filepath.Join("bin", "palabra"), "./cmd/palabra")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary with go install
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/palabra")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}

var Default = Build
