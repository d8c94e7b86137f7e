// Logcheck validates a logging configuration file and optionally
// emits probe records through the pipeline it describes.
//
//	logcheck --config logging.yaml
//	logcheck --config logging.yaml --category net --level warn -m "probe %d"
//	logcheck --config logging.yaml --dump 0AFF7E --count 10
//
// The exit status is 0 for a valid configuration and 1 otherwise, so
// it slots into deploy checks before a service restart picks up a new
// file.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/config"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/logger"
)

// All output goes through these so tests can capture it.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(stderr, msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func main() {
	opts := &options{}
	switch opts.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	level, ok := core.ParseLevel(opts.levelName)
	if !ok {
		fatal(nil, fmt.Sprintf("unknown level %q", opts.levelName))
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fatal(err, "invalid configuration")
	}

	fmt.Fprintf(stdout, "%s: configuration OK (default %s, %d categories, %d sinks)\n",
		programName, cfg.Default, len(cfg.Categories), len(cfg.Sinks))

	if opts.message == "" && opts.dumpHex == "" && opts.writeText == "" {
		return
	}

	var dumpData []byte
	if opts.dumpHex != "" {
		dumpData, err = hex.DecodeString(opts.dumpHex)
		if err != nil {
			fatal(err, "invalid --dump hex string")
		}
	}

	built, closeFn, err := cfg.Build()
	if err != nil {
		fatal(err, "building pipeline")
	}

	log := logger.NewWithBackend(built, opts.category)
	if !log.Enabled(level) {
		fmt.Fprintf(stdout, "%s: note: %s is below the minimum for category %q; probes will be dropped\n",
			programName, level, log.Name())
	}

	emitted := 0
	for i := 0; i < opts.count; i++ {
		if opts.message != "" {
			log.Log(level, "%s", opts.message)
			emitted++
		}
		if dumpData != nil {
			log.DumpAt(level, dumpData)
			emitted++
		}
		if opts.writeText != "" {
			log.WriteAt(level, []byte(opts.writeText))
			emitted++
		}
	}

	if err := closeFn(); err != nil {
		fatal(err, "closing pipeline")
	}

	fmt.Fprintf(stdout, "%s: emitted %d probe records at %s under category %q\n",
		programName, emitted, level, log.Name())
}
