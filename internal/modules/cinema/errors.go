package cinema

import "errors"

var ErrNotFound = errors.New("cinema not found")
