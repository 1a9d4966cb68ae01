// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

// ColorLevel represents the ANSI color level supported by the terminal.
type ColorLevel int

const (
	// ColorLevelNone represents a terminal that does not support color at all.
	ColorLevelNone ColorLevel = 0
	// ColorLevelBasic represents a terminal with basic 16 color support.
	ColorLevelBasic ColorLevel = 1
	// ColorLevelAnsi256 represents a terminal with 256 color support.
	ColorLevelAnsi256 ColorLevel = 2
	// ColorLevelAnsi16m represents a terminal with full true color support.
	ColorLevelAnsi16m ColorLevel = 3
)

func (l ColorLevel) String() string {
	switch l {
	case ColorLevelBasic:
		return "basic"
	case ColorLevelAnsi256:
		return "256"
	case ColorLevelAnsi16m:
		return "16m"
	default:
		return "none"
	}
}

// ColorLevelFromInt converts a numeric level, as found in FORCE_COLOR or a
// --level argument, to a ColorLevel. ok is false for out-of-range values.
func ColorLevelFromInt(level int) (result ColorLevel, ok bool) {
	if level < int(ColorLevelNone) || int(ColorLevelAnsi16m) < level {
		return ColorLevelNone, false
	}
	return ColorLevel(level), true
}

// ColorInfo describes the color support detected for a single output stream.
type ColorInfo struct {
	// Level is the detected color level.
	Level ColorLevel
	// HasBasic is true if the terminal supports the 16 basic ANSI colors.
	HasBasic bool
	// Has256 is true if the terminal supports the 256-color palette.
	Has256 bool
	// Has16m is true if the terminal supports 24-bit ("true color") codes.
	Has16m bool
}

// MakeColorInfo builds a ColorInfo from a level. The three booleans are
// always derived from the level, never set independently, so a higher level
// implies all the capabilities of the lower ones.
func MakeColorInfo(level ColorLevel) ColorInfo {
	return ColorInfo{
		Level:    level,
		HasBasic: level >= ColorLevelBasic,
		Has256:   level >= ColorLevelAnsi256,
		Has16m:   level >= ColorLevelAnsi16m,
	}
}
