package service

import "errors"

// Сигнальные ошибки доменного слоя; обработчики сопоставляют их с
// HTTP-статусами через errors.Is.
var (
	// ErrTripNotFound - поездка с указанным идентификатором отсутствует.
	ErrTripNotFound = errors.New("поездка не найдена")
	// ErrNotOwner - поездка существует, но принадлежит другому пользователю.
	ErrNotOwner = errors.New("поездка принадлежит другому пользователю")
	// ErrCountryNotFound - страна отсутствует или принадлежит другой поездке.
	ErrCountryNotFound = errors.New("страна не найдена в поездке")
	// ErrNoteNotFound - заметка отсутствует или принадлежит другой поездке.
	ErrNoteNotFound = errors.New("заметка не найдена в поездке")
)
