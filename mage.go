//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary     = "./bin/teambalancer"
	mainPkg    = "./cmd/teambalancer"
	sampleFile = "configs/roster.example.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the teambalancer binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", binary, mainPkg)
}

// Run balances the example roster
func Run() error {
	mg.Deps(Build)
	return sh.RunV(binary, "balance", sampleFile)
}

// Test runs unit tests
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunV("go", "test", "-race", "./...")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
