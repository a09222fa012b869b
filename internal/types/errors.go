package types

import "github.com/zeebo/errs"

var (
	// ErrAuth covers rejected credentials and expired sessions.
	ErrAuth = errs.Class("auth")
	// ErrValidation covers malformed creation payloads, caught before any
	// network call is made.
	ErrValidation = errs.Class("validation")
	// ErrTransport covers network and server failures on any read or write.
	ErrTransport = errs.Class("transport")
)
