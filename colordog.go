// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	docopt "github.com/docopt/docopt-go"
	colorable "github.com/mattn/go-colorable"
	"github.com/mgutz/ansi"

	winansi "github.com/ergochat/colordog/ansi"
	"github.com/ergochat/colordog/lib"
)

func main() {
	version := lib.SemVer
	usage := `colordog.
colordog detects whether your terminal supports ANSI color, and at which
level: none, the basic 16 colors, the 256-color palette, or 24-bit true
color. It prints a verdict for standard output and standard error, which is
useful when deciding whether a tool should emit escape sequences.

Detection inspects whether the stream is an interactive terminal and the
usual environment variables (NO_COLOR, FORCE_COLOR, CI, TERM_PROGRAM,
COLORTERM, TERM), plus the console build number on Windows. It also honors
the conventional --color/--no-color flags, so you can pass those to
colordog itself to see how a program sniffing them would behave.

Usage:
	colordog [options]
	colordog -h | --help
	colordog --version

Options:
	--swatch       Print color samples at the detected stdout level.
	--level=<n>    Force the swatch level (0-3), overriding detection.
	-h --help      Show this screen.
	--version      Show version.`

	arguments, _ := docopt.Parse(usage, nil, true, version, false)

	support := lib.SupportsColor()
	printInfo("stdout", support.Stdout)
	printInfo("stderr", support.Stderr)

	if arguments["--swatch"].(bool) {
		level := support.Stdout.Level
		if arguments["--level"] != nil {
			levelNum, err := strconv.Atoi(arguments["--level"].(string))
			if err != nil {
				log.Fatalln("--level must be a number 0-3")
			}
			forced, ok := lib.ColorLevelFromInt(levelNum)
			if !ok {
				log.Fatalln("--level must be a number 0-3")
			}
			level = forced
		}
		if err := winansi.EnableANSI(); err != nil {
			log.Printf("could not enable console ANSI processing: %v\n", err)
		}
		printSwatch(colorable.NewColorableStdout(), level)
	}
}

func printInfo(name string, info lib.ColorInfo) {
	fmt.Printf("%s:\n", name)
	fmt.Printf("  level:      %s\n", info.Level)
	fmt.Printf("  basic (16): %v\n", info.HasBasic)
	fmt.Printf("  256-color:  %v\n", info.Has256)
	fmt.Printf("  true color: %v\n", info.Has16m)
}

var basicSwatchColors = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

func printSwatch(out io.Writer, level lib.ColorLevel) {
	if level < lib.ColorLevelBasic {
		fmt.Fprintln(out, "no color support detected; nothing to show")
		return
	}

	fmt.Fprint(out, "16:  ")
	for _, name := range basicSwatchColors {
		fmt.Fprint(out, ansi.ColorCode(name)+"██"+ansi.Reset)
		fmt.Fprint(out, ansi.ColorCode(name+"+h")+"██"+ansi.Reset)
	}
	fmt.Fprintln(out)

	if level >= lib.ColorLevelAnsi256 {
		fmt.Fprint(out, "256: ")
		// a walk along the 6x6x6 color cube
		for i := 0; i < 16; i++ {
			fmt.Fprintf(out, "\x1b[48;5;%dm  ", 16+i*14)
		}
		fmt.Fprintln(out, "\x1b[0m")
	}

	if level >= lib.ColorLevelAnsi16m {
		fmt.Fprint(out, "16m: ")
		for i := 0; i < 16; i++ {
			fmt.Fprintf(out, "\x1b[48;2;%d;%d;%dm  ", 255-i*16, i*16, 128)
		}
		fmt.Fprintln(out, "\x1b[0m")
	}
}
