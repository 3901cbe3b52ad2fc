package reschedule_session

import "errors"

var (
	ErrInternal = errors.New("reschedule_session: internal error")
)
