package booking

import "errors"

var (
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrUnknownSource      = errors.New("unknown selection source")
)
