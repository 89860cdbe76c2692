package domain

import "errors"

// ErrBusy is returned when an exploration or navigation operation is already
// in flight for the session.
var ErrBusy = errors.New("operation already in flight")

// ErrNoSession is returned when an operation requires a started session.
var ErrNoSession = errors.New("session not started")

// ErrGameNotFound is returned when a game ID cannot be found in the store.
var ErrGameNotFound = errors.New("game not found")

// ErrStaleToken is returned when a request presents a capability token that
// has since been rotated.
var ErrStaleToken = errors.New("stale capability token")

// ErrIllegalMove is returned by the authority for a move that is not to an
// adjacent, enterable cell.
var ErrIllegalMove = errors.New("illegal move")

// ErrLayoutNotFound is returned when a maze layout ID is unknown.
var ErrLayoutNotFound = errors.New("layout not found")
