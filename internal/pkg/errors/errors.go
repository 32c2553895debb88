package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// Is сравнивает ошибки по коду и сообщению, чтобы errors.Is работал
// с копиями, созданными через Wrap.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// Wrap создаёт ошибку с кодом base и текстом err.
// Используется для ошибок транспорта, где сообщение - текст исходной ошибки.
func Wrap(base *AppError, err error) *AppError {
	if err == nil {
		return base
	}
	return &AppError{
		Code:       base.Code,
		Message:    err.Error(),
		StatusCode: base.StatusCode,
		Details:    make(map[string]interface{}),
	}
}

// Message возвращает человекочитаемый текст ошибки без кода.
func Message(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// CodeOf возвращает код AppError или CodeInternal для прочих ошибок.
func CodeOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
