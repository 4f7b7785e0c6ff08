// Tailtint - Tailwind colour detection and resolution
//
// Tailtint finds the colours used by Tailwind utility classes in source
// files, resolves them through the project theme, and suggests class names
// for a given colour.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tailtint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
