package backend

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoBaseURL возвращается, если адрес бэкенда не задан.
	ErrNoBaseURL = errors.New("base url is required")

	// ErrUnexpectedStatus возвращается при ответе вне диапазона 2xx.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// StatusError описывает ответ бэкенда с кодом вне диапазона 2xx.
type StatusError struct {
	Code int
	Body []byte
}

// Error реализует интерфейс error для StatusError.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.Code)
}

// Unwrap позволяет сравнивать StatusError с ErrUnexpectedStatus через errors.Is.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
