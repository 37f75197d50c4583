package repository

import "errors"

// Ошибки отсутствия сущностей. Проверка существования выполняется до любой
// мутации, чтобы наружу уходил NotFound, а не ошибка хранилища.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ValidationError несет первое нарушенное правило валидации входных данных.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
