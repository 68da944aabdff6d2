package janken

import "errors"

// ErrIllegalMove is returned when a move outside the legal set reaches the
// resolver. It indicates a bug upstream and must not be recovered from.
var ErrIllegalMove = errors.New("illegal move")
