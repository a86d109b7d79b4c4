package strip

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)
