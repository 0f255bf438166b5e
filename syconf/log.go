package syconf

// Debug/trace logging for the compiler and evaluator, in the style of
// "log" package leveled loggers. Unlike panicErr (which reports user-facing
// configuration-source errors), these are developer diagnostics only.

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// debugf logs a compiler/evaluator trace message tagged with loc, only when
// debug logging is enabled.
func debugf(loc Location, format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Debug.Printf("%s: %s", loc, fmt.Sprintf(format, args...))
	}
}
