package logger_test

import (
	"io"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/formatter"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/logger"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/sink"
)

func Example() {
	log := logger.New("app")
	log.Infof("service started on port %d", 8080)
	log.Warnf("disk usage at %d%%", 91)
}

func ExampleNew_categories() {
	// Each subsystem gets its own category so verbosity can be tuned
	// per category without touching call sites.
	netLog := logger.New("net")
	dbLog := logger.New("db")

	netLog.Debugf("connection from %s", "10.0.0.7")
	dbLog.Errorf("query failed: %v", io.ErrUnexpectedEOF)
}

func ExampleSetDefault() {
	stream := sink.NewStream(sink.StreamConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer stream.Close()

	backend.SetDefault(stream)
	logger.Infof("now flowing as JSON")
}

func ExampleLogger_Dump() {
	log := logger.New("proto")

	frame := []byte{0x7E, 0x00, 0x04, 0x08, 0x01, 0xFF, 0x7E}
	log.Dump(frame) // encoded as 7E000408 01FF7E without separators
}

func ExampleLogger_Printf() {
	log := logger.New("app")

	// Printf bypasses message decoration; the text reaches the sink
	// exactly as formatted here.
	log.Printf("raw line %d", 42)
}

func ExampleLogger_InfoEnabled() {
	log := logger.New("net")

	if log.InfoEnabled() {
		report := expensiveSummary()
		log.Infof("state: %s", report)
	}
}

func expensiveSummary() string { return "ok" }

func ExampleLogger_Log() {
	log := logger.New("app")

	level := logger.ParseLevel("warning")
	log.Log(level, "threshold crossed: %d", 17)
}

func ExampleNewWithBackend() {
	rec := backend.NewRecorder(core.TraceLevel)
	log := logger.NewWithBackend(rec, "test")

	log.Infof("captured, not printed")
	_ = rec.Total()
}
