package colorfy

import "sync"

var (
	vtOnce sync.Once
	vtErr  error
)

// EnableVirtualTerminal asks the hosting console to interpret ANSI virtual
// terminal sequences. It is a one-shot, idempotent initialization step: the
// first call does the work and later calls return the same result. On
// platforms whose terminals speak ANSI natively it is a no-op. Failure is
// best-effort and non-fatal; callers typically just log it and carry on
// with escape sequences anyway.
func EnableVirtualTerminal() error {
	vtOnce.Do(func() {
		vtErr = enableVirtualTerminal()
	})
	return vtErr
}
