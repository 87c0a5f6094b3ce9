// Package errs provides the error kinds shared by catalog operations.
package errs

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrNotFound = errors.New("product not found")
var ErrTypeMismatch = errors.New("type mismatch")
