package book_session

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
// Ошибки бизнес-правил возвращаются как ошибки пакета domain
var ErrInternal = errors.New("book_session: internal error")
