package recurring_blocks

import "errors"

var (
	// ErrRecurringBlockNotFound возвращается, когда блок не найден у пользователя
	ErrRecurringBlockNotFound = errors.New("recurring block not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
