package db

import "errors"

// Domain-soft failure conditions. Handlers map these to 404 and 400; any
// other error reaches the client as a 500 with the raw message.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
