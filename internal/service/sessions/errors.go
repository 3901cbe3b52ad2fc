package sessions

import "errors"

var (
	// ErrAccessDenied возвращается, когда член клуба обращается к чужой сессии
	ErrAccessDenied = errors.New("sessions: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
