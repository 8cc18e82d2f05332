package cas

import "errors"

// Sentinel errors returned by this package. Callers should use
// [errors.Is] to test for them; I/O failures are returned as the
// underlying error, unwrapped and unchanged.
var (
	// ErrInvalidArgument is returned for malformed caller input that is
	// not an address-parsing failure: an empty store root, a nil source
	// reader, or an encoding that is nil or whose name is empty or
	// contains a path separator or a dot.
	ErrInvalidArgument = errors.New("cas: invalid argument")

	// ErrBadLength is returned by address parsing when the input is not
	// exactly 40 hex characters (text form) or 20 bytes (binary form).
	ErrBadLength = errors.New("cas: address has wrong length")

	// ErrBadHex is returned by address parsing when the input contains a
	// character outside [0-9A-Fa-f].
	ErrBadHex = errors.New("cas: address has non-hex character")

	// ErrCancelled is returned by Write when its context is cancelled
	// while the streaming hash-and-write loop is in flight. No store
	// state is left visible by a cancelled write.
	ErrCancelled = errors.New("cas: write cancelled")
)
