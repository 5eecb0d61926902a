package catalog

import "errors"

var ErrMatchNotFound = errors.New("match not found")
