package trainers

import "errors"

var (
	ErrInternal = errors.New("trainers: internal error")
)
