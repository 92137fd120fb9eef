package compiler

import (
	"log"
	"os"

	"github.com/xyproto/env/v2"
)

// debugEnabled is read once at process start. Set MINIC_DEBUG=1 (or any
// value env.Bool treats as true) to trace each pipeline stage on stderr.
var debugEnabled = env.Bool("MINIC_DEBUG")

var debugLog = log.New(os.Stderr, "minicc: ", 0)

func debugf(format string, args ...any) {
	if debugEnabled {
		debugLog.Printf(format, args...)
	}
}
