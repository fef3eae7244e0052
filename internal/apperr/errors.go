package apperr

import "errors"

var (
	ErrUnknownVendor = errors.New("unknown vendor")
	ErrTargetExists  = errors.New("target exists")
	ErrNoInput       = errors.New("no input files")
)
