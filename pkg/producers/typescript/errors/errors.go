package errors

import "errors"

var (
	ErrNilApiDefinition = errors.New("nil api definition")
)
