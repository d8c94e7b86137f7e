package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

const (
	programName = "logcheck"
	version     = "1.0.0"
	originURL   = "https://github.com/RIT-Landsat-Field-Radiometers/shared-utils"
)

type options struct {
	configPath string
	category   string
	levelName  string
	message    string
	dumpHex    string
	writeText  string
	count      int
}

func (o *options) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}
	fs.SetOutput(stderr)

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.StringVarP(&o.configPath, "config", "c", "",
		`Logging configuration file to validate. An absent file is not
an error; the built-in defaults are validated instead.`)
	fs.StringVar(&o.category, "category", "",
		"Category to emit probe records under (default \"app\")")
	fs.StringVar(&o.levelName, "level", "info",
		"Level to emit probe records at: trace, debug, info, warn or error")
	fs.StringVarP(&o.message, "message", "m", "",
		"Emit this text as a probe message through the built pipeline")
	fs.StringVar(&o.dumpHex, "dump", "",
		`Hex string (e.g. 0AFF7E) to decode and emit as a probe dump
through the built pipeline.`)
	fs.StringVar(&o.writeText, "write", "",
		"Emit this text verbatim on the raw write path")
	fs.IntVarP(&o.count, "count", "n", 1, "Number of times to emit each probe")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return parseStop
		}
		fmt.Fprintln(stderr, "Error:", err.Error())
		return parseFailed
	}

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(stdout)
		printVersion()
		return parseStop
	}

	if versionFlag {
		printVersion()
		return parseStop
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: '%v'\n", fs.Args())
		return parseFailed
	}

	if o.count < 1 {
		fmt.Fprintln(stderr, "Error: --count must be at least 1")
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(stdout, `NAME
	%s -- validate a logging configuration and probe the pipeline it builds

SYNOPSIS
	%s [--config path] [--category name] [--level name]
	         [--message text] [--dump hex] [--write text] [--count n]

DESCRIPTION
	%s loads a logging configuration the same way a service would,
	reports whether it is valid, and exits nonzero if it is not. With
	--message, --dump or --write it also assembles the configured sinks
	and emits probe records through them, which verifies file paths,
	permissions and rotation settings end to end.

OPTIONS
%s`, programName, programName, programName, fs.FlagUsages())
}

func printVersion() {
	fmt.Fprintln(stdout, programName, version)
	fmt.Fprintln(stdout, originURL)
}
