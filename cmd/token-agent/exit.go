package main

import "github.com/MKhiriev/go-token-agent/internal/service"

// Exit codes of the token-agent binary.
const (
	exitOK          = 0
	exitRecoverable = 1
	exitFailure     = 2
)

// exitCode maps err to the process exit code: recoverable errors such as a
// wrong password exit with 1, corruption and I/O failures with 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case service.IsRecoverable(err):
		return exitRecoverable
	default:
		return exitFailure
	}
}
