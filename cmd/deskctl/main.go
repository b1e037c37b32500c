// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/deskctl/main.go
// Summary: Offline inspection and maintenance of the saved desktop layout.
// Usage: deskctl show [--raw] | deskctl reset [--icons] [--windows] [--geometry] | deskctl arrange

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
