//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import "fmt"

// CallLog records collaborator calls in order, so tests can assert on the
// sequence across several doubles sharing the same log.
type CallLog struct {
	Calls []string
}

// Record appends a formatted call.
func (l *CallLog) Record(format string, args ...any) {
	if l == nil {
		return
	}
	l.Calls = append(l.Calls, fmt.Sprintf(format, args...))
}

// IndexOf returns the position of the first call equal to call, or -1.
func (l *CallLog) IndexOf(call string) int {
	for i, c := range l.Calls {
		if c == call {
			return i
		}
	}
	return -1
}
