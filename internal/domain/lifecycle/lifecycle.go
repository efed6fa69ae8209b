// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds startup and shutdown hooks such as the initial
	// database ping and the HTTP server drain.
	DefaultTimeout = 30 * time.Second

	// ProbeTimeout bounds per-operation storage readiness probes so a dead
	// backend fails fast instead of hanging the request.
	ProbeTimeout = 2 * time.Second
)
