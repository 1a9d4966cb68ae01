// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import "strings"

// HasFlag reports whether the given flag appears in args. The flag may be
// written with any number of leading dashes and is matched ignoring case,
// so HasFlag("no-color", args) accepts "--no-color", "no-color" and
// "--NO-COLOR" alike.
func HasFlag(flag string, args []string) bool {
	want := strings.ToLower(strings.TrimLeft(flag, "-"))
	for _, arg := range args {
		if strings.ToLower(strings.TrimLeft(arg, "-")) == want {
			return true
		}
	}
	return false
}

// ColorLevelFromFlags interprets the conventional --color / --no-color flag
// family. ok is false when none of the recognized flags are present. The
// disabling flags win over the enabling ones, and the more specific
// --color=16m / --color=256 forms win over the generic --color.
func ColorLevelFromFlags(args []string) (level ColorLevel, ok bool) {
	switch {
	case HasFlag("no-color", args), HasFlag("no-colors", args),
		HasFlag("color=false", args), HasFlag("color=never", args):
		return ColorLevelNone, true
	case HasFlag("color=16m", args), HasFlag("color=full", args),
		HasFlag("color=truecolor", args):
		return ColorLevelAnsi16m, true
	case HasFlag("color=256", args):
		return ColorLevelAnsi256, true
	case HasFlag("color", args), HasFlag("colors", args),
		HasFlag("color=true", args), HasFlag("color=always", args):
		return ColorLevelBasic, true
	}
	return ColorLevelNone, false
}
