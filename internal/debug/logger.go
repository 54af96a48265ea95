package debug

import (
	"fmt"
	"io"
	"time"
)

var writer io.Writer = io.Discard

// SetOutput sets the debug output destination
func SetOutput(w io.Writer) {
	writer = w
}

// Log writes a timestamped debug message
func Log(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(writer, "%s "+format+"\n", append([]interface{}{time.Now().Format("15:04:05.000")}, args...)...)
}

// LogErrors writes one line per error. Errors combined with errors.Join
// are split so each failing arrow gets its own line.
func LogErrors(prefix string, err error) {
	if err == nil || !Enabled() {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			LogErrors(prefix, e)
		}
		return
	}
	Log("%s: %v", prefix, err)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return writer != io.Discard
}
