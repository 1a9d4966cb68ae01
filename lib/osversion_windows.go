// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

//go:build windows

package lib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// osRelease returns the Windows version in dotted "major.minor.build" form,
// e.g. "10.0.19045". RtlGetNtVersionNumbers reports the true version even
// when the process runs without an application manifest.
func osRelease() string {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("%d.%d.%d", major, minor, build)
}
