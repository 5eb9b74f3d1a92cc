package domain

import "errors"

var (
	// ErrInvalidTransaction is returned when a transaction record lacks inputs or outputs
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrNoLiveBox is returned when a token has no unspent box carrying it
	ErrNoLiveBox = errors.New("no live box")
)
