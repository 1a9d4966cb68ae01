// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// OutputStreamOptions configures detection for a single output stream.
type OutputStreamOptions struct {
	// IsTTY is whether the stream is connected to an interactive terminal.
	IsTTY bool
	// SniffFlags enables inspection of Args for the conventional --color
	// and --no-color flags.
	SniffFlags bool
	// Args is the argument list to sniff; nil means os.Args[1:].
	Args []string
}

func (opts OutputStreamOptions) args() []string {
	if opts.Args != nil {
		return opts.Args
	}
	return os.Args[1:]
}

// TeamCity agents accept ANSI codes from version 9.1 on
var teamcityColorVersion = regexp.MustCompile(`^(9\.(0*[1-9]\d*|0+)|\d{2,}\.)`)

// terminal programs with known color capabilities, keyed by the lowercased
// TERM_PROGRAM value (iTerm is special-cased on its version)
var termProgramLevels = map[string]ColorLevel{
	"apple_terminal": ColorLevelAnsi256,
}

var (
	// TERM name prefixes and substrings that indicate a color-capable,
	// but not necessarily 256-color, terminal
	basicTermPrefixes = []string{"screen", "xterm", "vt100", "vt220", "rxvt"}
	basicTermMarkers  = []string{"color", "ansi", "cygwin", "linux"}
)

// Detect computes color support from an explicit TTY flag and environment
// snapshot. It is a pure function of its arguments: deterministic,
// side-effect-free, and total (the worst case is ColorLevelNone). The
// convenience entry points Stdout and Stderr delegate to it after gathering
// the real signals.
func Detect(isTTY bool, env Environment) ColorInfo {
	return MakeColorInfo(DetermineColorLevel(OutputStreamOptions{IsTTY: isTTY}, env))
}

// DetermineColorLevel runs the full detection cascade for a single stream,
// including flag sniffing when opts requests it.
func DetermineColorLevel(opts OutputStreamOptions, env Environment) ColorLevel {
	// explicit overrides first: NO_COLOR beats FORCE_COLOR beats flags,
	// and a recognized override bypasses the TTY check below
	if env.NoColor != "" {
		return ColorLevelNone
	}
	forced, haveForced := forceColorLevel(env)
	if !haveForced && opts.SniffFlags {
		forced, haveForced = ColorLevelFromFlags(opts.args())
	}
	if haveForced {
		return forced
	}

	if !opts.IsTTY {
		return ColorLevelNone
	}

	return environmentColorLevel(env)
}

// forceColorLevel interprets FORCE_COLOR. ok is false when the variable is
// absent or its value is unrecognized; unrecognized values fall through to
// the rest of the cascade rather than deciding anything.
func forceColorLevel(env Environment) (level ColorLevel, ok bool) {
	if !env.ForceColorSet {
		return ColorLevelNone, false
	}
	switch strings.ToLower(env.ForceColor) {
	case "", "true":
		// set-but-empty means "on"; only "0" and "false" mean "off"
		return ColorLevelBasic, true
	case "false":
		return ColorLevelNone, true
	}
	if n, err := strconv.Atoi(env.ForceColor); err == nil {
		if level, ok := ColorLevelFromInt(n); ok {
			return level, true
		}
	}
	return ColorLevelNone, false
}

// environmentColorLevel applies the heuristics that only make sense once we
// know the stream is an interactive terminal: CI markers, then the terminal
// program, then COLORTERM, then TERM itself, then platform defaults.
func environmentColorLevel(env Environment) ColorLevel {
	term := strings.ToLower(env.Term)

	if term == "dumb" {
		return ColorLevelNone
	}

	// CI log renderers generally accept the 16-color codes and nothing more
	if env.TeamCityVersion != "" {
		if teamcityColorVersion.MatchString(env.TeamCityVersion) {
			return ColorLevelBasic
		}
		return ColorLevelNone
	}
	if env.CI != "" {
		return ColorLevelBasic
	}

	if level, ok := termProgramColorLevel(env); ok {
		return level
	}

	colorterm := strings.ToLower(env.ColorTerm)
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return ColorLevelAnsi16m
	}
	if strings.Contains(colorterm, "256") {
		return ColorLevelAnsi256
	}
	if colorterm != "" {
		return ColorLevelBasic
	}

	if level, ok := termColorLevel(term); ok {
		return level
	}

	if env.Platform == "windows" {
		return windowsColorLevel(env)
	}

	return ColorLevelNone
}

func termProgramColorLevel(env Environment) (level ColorLevel, ok bool) {
	program := strings.ToLower(env.TermProgram)
	if program == "" {
		return ColorLevelNone, false
	}
	// iTerm gained true color support in its 3.x series
	if program == "iterm.app" {
		if major, ok := env.termProgramVersionMajor(); ok && major >= 3 {
			return ColorLevelAnsi16m, true
		}
		return ColorLevelAnsi256, true
	}
	level, ok = termProgramLevels[program]
	return
}

func termColorLevel(term string) (level ColorLevel, ok bool) {
	if term == "" {
		return ColorLevelNone, false
	}
	if term == "xterm-kitty" {
		return ColorLevelAnsi16m, true
	}
	if strings.HasSuffix(term, "-256color") || strings.Contains(term, "256") {
		return ColorLevelAnsi256, true
	}
	for _, prefix := range basicTermPrefixes {
		if strings.HasPrefix(term, prefix) {
			return ColorLevelBasic, true
		}
	}
	for _, marker := range basicTermMarkers {
		if strings.Contains(term, marker) {
			return ColorLevelBasic, true
		}
	}
	return ColorLevelNone, false
}

// windowsColorLevel applies build-number defaults for the Windows console:
// build 10586 added 256-color ANSI support and build 14931 added 24-bit
// color. Anything older still understands the 16 basic colors once virtual
// terminal processing is on (see the ansi package).
func windowsColorLevel(env Environment) ColorLevel {
	major, _, build := env.osReleaseParts()
	if major >= 10 && build >= 14931 {
		return ColorLevelAnsi16m
	}
	if major >= 10 && build >= 10586 {
		return ColorLevelAnsi256
	}
	return ColorLevelBasic
}

var (
	stdoutOnce sync.Once
	stdoutInfo ColorInfo

	stderrOnce sync.Once
	stderrInfo ColorInfo
)

// Stdout reports the color support of standard output. The verdict is
// computed on first use and memoized.
func Stdout() ColorInfo {
	stdoutOnce.Do(func() {
		stdoutInfo = detectStream(os.Stdout)
	})
	return stdoutInfo
}

// Stderr reports the color support of standard error. The verdict is
// computed on first use and memoized.
func Stderr() ColorInfo {
	stderrOnce.Do(func() {
		stderrInfo = detectStream(os.Stderr)
	})
	return stderrInfo
}

func detectStream(f *os.File) ColorInfo {
	opts := OutputStreamOptions{
		IsTTY:      isTerminal(f),
		SniffFlags: true,
	}
	return MakeColorInfo(DetermineColorLevel(opts, NewEnvironment()))
}

// ColorSupport describes the detected support for both standard streams.
type ColorSupport struct {
	Stdout ColorInfo
	Stderr ColorInfo
}

// SupportsColor detects color support for stdout and stderr together.
func SupportsColor() ColorSupport {
	return ColorSupport{
		Stdout: Stdout(),
		Stderr: Stderr(),
	}
}
