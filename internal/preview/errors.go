package preview

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном входном файле
	ErrInvalidInput = errors.New("preview: invalid input")

	// ErrUnknownFormat возвращается при неизвестном формате вывода
	ErrUnknownFormat = errors.New("preview: unknown output format")
)
