package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	rec := &core.Record{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:    core.InfoLevel,
		Category: "app",
		Kind:     core.KindMessage,
		Text:     "hello world",
	}

	out, _ := f.Format(rec)
	// Timestamp prefix followed by level, category and message.
	fmt.Println(strings.Contains(string(out), "[INFO]"))
	fmt.Println(strings.Contains(string(out), "app: hello world"))
	// Output:
	// true
	// true
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	rec := &core.Record{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:    core.DebugLevel,
		Category: "net",
		Kind:     core.KindDump,
		Text:     "0AFF",
	}

	out, _ := f.Format(rec)
	fmt.Println(strings.Contains(string(out), `"level":"DEBUG"`))
	fmt.Println(strings.Contains(string(out), `"msg":"0AFF"`))
	// Output:
	// true
	// true
}
