package get_free_slots

import "errors"

var (
	ErrInternal = errors.New("get_free_slots: internal error")
)
