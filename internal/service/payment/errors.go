package payment

import "errors"

var (
	ErrUnknownProvider     = errors.New("unknown payment provider")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
