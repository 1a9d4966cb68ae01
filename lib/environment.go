// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Environment is a snapshot of the external signals consulted by the
// detection cascade. The zero value means "nothing set"; tests construct
// values by hand, NewEnvironment reads the real process state.
//
// Variable names are matched case-sensitively when the snapshot is taken;
// the values are interpreted case-insensitively by the cascade.
type Environment struct {
	// NoColor is the value of NO_COLOR (https://no-color.org/). Any
	// non-empty value disables color.
	NoColor string

	// ForceColor is the value of FORCE_COLOR; ForceColorSet distinguishes a
	// set-but-empty value (which forces basic color on) from an absent one.
	ForceColor    string
	ForceColorSet bool

	// Term is the value of TERM.
	Term string
	// ColorTerm is the value of COLORTERM.
	ColorTerm string
	// TermProgram and TermProgramVersion are the values of TERM_PROGRAM
	// and TERM_PROGRAM_VERSION.
	TermProgram        string
	TermProgramVersion string
	// TeamCityVersion is the value of TEAMCITY_VERSION.
	TeamCityVersion string
	// CI is the value of the CI variable set by most build systems.
	CI string

	// Platform is the runtime.GOOS value to apply platform rules for.
	Platform string
	// OSRelease is the OS version in dotted "major.minor.build" form; it is
	// only consulted on the windows platform.
	OSRelease string
}

// NewEnvironment snapshots the real process environment. The snapshot is not
// atomic with respect to concurrent os.Setenv calls, matching the
// non-transactional nature of process environment storage.
func NewEnvironment() Environment {
	forceColor, forceColorSet := os.LookupEnv("FORCE_COLOR")
	return Environment{
		NoColor:            os.Getenv("NO_COLOR"),
		ForceColor:         forceColor,
		ForceColorSet:      forceColorSet,
		Term:               os.Getenv("TERM"),
		ColorTerm:          os.Getenv("COLORTERM"),
		TermProgram:        os.Getenv("TERM_PROGRAM"),
		TermProgramVersion: os.Getenv("TERM_PROGRAM_VERSION"),
		TeamCityVersion:    os.Getenv("TEAMCITY_VERSION"),
		CI:                 os.Getenv("CI"),
		Platform:           runtime.GOOS,
		OSRelease:          osRelease(),
	}
}

// termProgramVersionMajor parses the major component of
// TERM_PROGRAM_VERSION. ok is false if it is absent or not a number.
func (env Environment) termProgramVersionMajor() (major int, ok bool) {
	version, _, _ := strings.Cut(env.TermProgramVersion, ".")
	major, err := strconv.Atoi(version)
	if err != nil {
		return 0, false
	}
	return major, true
}

// osReleaseParts splits the dotted OSRelease string into major, minor and
// build numbers; missing or unparseable components count as zero.
func (env Environment) osReleaseParts() (major, minor, build int) {
	var numbers [3]int
	parts := strings.SplitN(env.OSRelease, ".", 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		if n, err := strconv.Atoi(parts[i]); err == nil {
			numbers[i] = n
		}
	}
	return numbers[0], numbers[1], numbers[2]
}
