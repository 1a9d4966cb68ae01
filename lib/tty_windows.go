// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

//go:build windows

package lib

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Cygwin and MSYS ptys are named pipes as far as the console API is
// concerned, so term.IsTerminal misses them.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
