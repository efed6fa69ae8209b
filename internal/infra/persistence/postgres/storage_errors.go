package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error classification.

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// PostgreSQL check_violation error code
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514")
}

// isConnectionError reports whether err means the database could not be
// reached at all, as opposed to rejecting the statement. Callers surface
// these as a storage-unavailable fault so clients know a retry may help.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "failed to connect")
}

// isTimeoutError reports whether err is a deadline expiry rather than a hard
// failure. Kept separate from isConnectionError so the two map to distinct
// faults.
func isTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
