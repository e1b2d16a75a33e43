package ports

import "errors"

// ErrDuplicate is returned by stores that enforce uniqueness without a database error code.
var ErrDuplicate = errors.New("duplicate record")
