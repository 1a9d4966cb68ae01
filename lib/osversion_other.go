// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

//go:build !windows

package lib

// Version thresholds only matter for the Windows console; other platforms
// are handled entirely by the TERM and COLORTERM heuristics.
func osRelease() string {
	return ""
}
