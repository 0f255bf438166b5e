package syconf

import (
	"runtime/debug"

	"github.com/pkg/errors"
)

// Recover runs cb, catching any panic not raised via panicErr and turning it
// into a generic error. It exists for the CLI boundary (cmd/), where a bug
// in this package itself should be reported rather than crash the process.
func Recover(cb func()) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("panic: %v\n%s", e, string(debug.Stack()))
		}
	}()
	cb()
	return nil
}
