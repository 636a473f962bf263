package model

import "errors"

// ErrDuplicateUser is returned by the store when an insert violates the
// username or email uniqueness constraint.
var ErrDuplicateUser = errors.New("username or email already registered")
