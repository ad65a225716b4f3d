// Huecard - A colour card composer for dye palettes
//
// Huecard matches colours against a dye catalogue and composes shareable
// cards for harmonies, gradients, mixes and vision simulations.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/joho/godotenv"

	"github.com/jmylchreest/huecard/internal/cli"
)

func main() {
	// A .env in the working directory may seed HUECARD_* variables.
	_ = godotenv.Load()

	cli.Execute()
}
