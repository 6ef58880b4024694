package practices

import "errors"

var (
	ErrPracticeNotFound = errors.New("practice not found")
	ErrResponseNotFound = errors.New("member response not found")
	ErrInvalidInput     = errors.New("invalid practice input")
	ErrInvalidStatus    = errors.New("invalid response status")
)
