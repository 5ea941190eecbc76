package errors

import (
	"errors"
)

var (
	ErrArgsNotMapping   = errors.New("args is not a mapping")
	ErrEmptyTypeName    = errors.New("empty type name")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrNoPackage        = errors.New("no package")
	ErrMultiplePackages = errors.New("multiple packages")
)
