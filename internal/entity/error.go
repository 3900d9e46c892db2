package entity

import (
	"errors"
)

var (
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidData        = errors.New("invalid data")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrConfigPathNotSet   = errors.New("CONFIG_PATH not set and -config flag not provided")
)

// InvalidDataError carries field-level detail for validation failures.
// It matches ErrInvalidData under errors.Is so transports can branch on the
// sentinel and still surface which field failed.
type InvalidDataError struct {
	Detail string
}

func (e *InvalidDataError) Error() string {
	return "invalid data: " + e.Detail
}

func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalidData
}
