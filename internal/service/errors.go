package service

import (
	"fmt"

	"github.com/pkg/errors"

	"tier-dashboard/internal/backend"
)

// Kind классифицирует ошибку действия.
type Kind string

const (
	// KindTransport: сетевая ошибка или ответ вне 2xx. Только логируется.
	KindTransport Kind = "TRANSPORT_FAILURE"
	// KindRejection: ответ 2xx, тело которого сообщает о доменном отказе.
	KindRejection Kind = "APPLICATION_REJECTION"
	// KindMalformed: тело ответа не JSON или в нём нет обещанных полей.
	KindMalformed Kind = "MALFORMED_RESPONSE"
)

// ErrAlreadyComplete возвращается при повторном принятии уже принятой заявки.
var ErrAlreadyComplete = errors.New("join request already complete")

// ActionError описывает неудачу действия: вид, имя действия, сообщение,
// HTTP-статус (если был ответ) и вложенную ошибку.
type ActionError struct {
	Kind    Kind
	Action  string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для ActionError.
func (e *ActionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// ErrTransport конструирует ActionError для сетевой ошибки или ответа вне 2xx.
func ErrTransport(action string, err error) *ActionError {
	ae := &ActionError{
		Kind:    KindTransport,
		Action:  action,
		Message: "request failed",
		Err:     err,
	}
	var se *backend.StatusError
	if errors.As(err, &se) {
		ae.Status = se.Code
		ae.Message = "unexpected status"
	}
	return ae
}

// ErrRejection конструирует ActionError для доменного отказа в ответе 2xx.
func ErrRejection(action, msg string) *ActionError {
	return &ActionError{
		Kind:    KindRejection,
		Action:  action,
		Message: msg,
	}
}

// ErrMalformed конструирует ActionError для ответа, не прошедшего разбор или проверку.
func ErrMalformed(action string, err error) *ActionError {
	return &ActionError{
		Kind:    KindMalformed,
		Action:  action,
		Message: "malformed response",
		Err:     err,
	}
}

// IsKind сообщает, является ли err ошибкой действия указанного вида.
func IsKind(err error, kind Kind) bool {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
