// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldesk/panic.go
// Summary: Persists panic stack traces after the screen has been restored.

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
)

// recoverPanic should be deferred in run. The driver has already finalised
// the screen by the time the panic unwinds here.
func recoverPanic(path string) {
	r := recover()
	if r == nil {
		return
	}
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, false)
	msg := fmt.Sprintf("panic: %v\n%s", r, buf[:n])
	log.Print(msg)
	fmt.Fprintln(os.Stderr, msg)
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		fmt.Fprintf(f, "[%s] %s\n", time.Now().Format(time.RFC3339Nano), msg)
		f.Close()
	}
	os.Exit(2)
}
