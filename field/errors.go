package field

import "errors"

// ErrZeroInverse is returned by Inverse when asked to invert zero (§7).
var ErrZeroInverse = errors.New("field: zero has no multiplicative inverse")

// Error wraps a field operation failure, identifying the operation that
// failed alongside the sentinel cause so callers can errors.Is/As it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "field: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
