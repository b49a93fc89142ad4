package recurring_block

import "errors"

var (
	// ErrRecurringBlockNotFound возвращается, когда блок не найден у пользователя
	ErrRecurringBlockNotFound = errors.New("recurring_block.repository: recurring block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("recurring_block.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("recurring_block.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("recurring_block.repository: failed to scan row")

	// ErrEmptyPatch возвращается при попытке обновления без изменяемых полей
	ErrEmptyPatch = errors.New("recurring_block.repository: nothing to update")
)
