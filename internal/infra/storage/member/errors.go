package member

import "errors"

var (
	// ErrMemberNotFound возвращается, когда член клуба не найден
	ErrMemberNotFound = errors.New("member.repository: member not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("member.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("member.repository: failed to scan row")
)
