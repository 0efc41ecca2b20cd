// Package priority raises the scheduling priority of the current process
// on a best-effort basis, so benchmark timing is less exposed to scheduler
// noise. It is consumed once at startup and is never fatal: benchmarks run
// fine at normal priority, just with more jitter.
package priority

import "errors"

// targetNice is the nice value requested when raising priority. Reaching
// it requires elevated privileges on most systems.
const targetNice = -10

var (
	// ErrInsufficientPrivileges means the process may not lower its nice
	// value and is currently worse than the default priority.
	ErrInsufficientPrivileges = errors.New("insufficient privileges to raise process priority")
	// ErrNotSupported means the platform has no nice-value concept.
	ErrNotSupported = errors.New("process priority adjustment is not supported on this platform")
)

// Raise attempts to raise the priority of the current process and returns
// the resulting nice value.
//
// An unprivileged process cannot lower its nice value, so sitting at nice
// 0 or better already counts as success: that is the best such a process
// can do.
func Raise() (int, error) {
	return raise()
}

// Current returns the current nice value of this process, or 0 if it
// cannot be determined.
func Current() int {
	return current()
}
