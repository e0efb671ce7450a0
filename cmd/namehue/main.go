// Namehue - deterministic avatar colours for display names
//
// Namehue derives stable, accessibility-checked background and text colour
// pairs from display names, and analyses colour distribution across name
// rosters.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/namehue/internal/cli"
)

func main() {
	cli.Execute()
}
