// Package service реализует диспетчер действий дашборда: сбор полей формы,
// отправку запроса и применение результата к странице.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tier-dashboard/internal/backend"
	"tier-dashboard/internal/model"
	"tier-dashboard/internal/ui"
)

// Backend описывает контракт транспорта для диспетчера.
type Backend interface {
	Post(ctx context.Context, req backend.Request) (*backend.Response, error)
}

// Option настраивает Dispatcher.
type Option func(*Dispatcher)

// WithCompletionHook добавляет хук завершения запроса.
func WithCompletionHook(h CompletionHook) Option {
	return func(d *Dispatcher) {
		d.hooks = append(d.hooks, h)
	}
}

// WithRequestIDs подменяет генератор идентификаторов запросов.
func WithRequestIDs(next func() string) Option {
	return func(d *Dispatcher) {
		d.newID = next
	}
}

// Dispatcher выполняет действия пользователя. Безопасен для одновременного использования;
// повторный вызов до завершения предыдущего отправляет независимый запрос.
type Dispatcher struct {
	backend  Backend
	page     *ui.Page
	pc       model.PageContext
	log      *logrus.Entry
	validate *validator.Validate
	hooks    []CompletionHook
	newID    func() string
}

// NewDispatcher создаёт диспетчер для страницы page в контексте pc.
func NewDispatcher(b Backend, page *ui.Page, pc model.PageContext, log *logrus.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		backend:  b,
		page:     page,
		pc:       pc,
		log:      log.WithField("component", "dispatcher"),
		validate: validator.New(),
		newID:    uuid.NewString,
	}
	d.hooks = append(d.hooks, d.logCompletion)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Page возвращает страницу диспетчера.
func (d *Dispatcher) Page() *ui.Page {
	return d.page
}

// Context возвращает контекст страницы.
func (d *Dispatcher) Context() model.PageContext {
	return d.pc
}

type action struct {
	name     string
	endpoint string
	field    string
	control  *ui.Control
}

// submit отправляет один запрос и применяет onSuccess к телу ответа 2xx.
// Ошибки только логируются; состояние страницы при неудаче не меняется.
func (d *Dispatcher) submit(ctx context.Context, a action, payload any, onSuccess func(body []byte) error) (res Result) {
	id := d.newID()
	res = Result{Action: a.name, RequestID: id}
	log := d.log.WithFields(logrus.Fields{
		"action":     a.name,
		"request_id": id,
		"endpoint":   a.endpoint,
	})

	end := a.control.Begin()
	start := time.Now()
	defer func() {
		end()
		c := Completion{
			Action:    a.name,
			RequestID: id,
			Endpoint:  a.endpoint,
			Duration:  time.Since(start),
			Err:       res.Err,
		}
		for _, h := range d.hooks {
			h(c)
		}
	}()

	resp, err := d.backend.Post(ctx, backend.Request{
		Endpoint:  a.endpoint,
		Field:     a.field,
		Payload:   payload,
		RequestID: id,
	})
	if err != nil {
		res.Err = ErrTransport(a.name, err)
		log.WithError(err).Error("error")
		return res
	}
	res.Body = resp.Body

	if onSuccess != nil {
		if err := onSuccess(resp.Body); err != nil {
			res.Err = err
			log.WithError(err).Error("error")
			return res
		}
	}

	log.Info("success")
	return res
}

func (d *Dispatcher) logCompletion(c Completion) {
	d.log.WithFields(logrus.Fields{
		"action":      c.Action,
		"request_id":  c.RequestID,
		"duration_ms": c.Duration.Milliseconds(),
		"ok":          c.Err == nil,
	}).Debug("complete")
}

// decode разбирает тело ответа в v и проверяет обязательные поля.
func (d *Dispatcher) decode(actionName string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return ErrMalformed(actionName, err)
	}
	if err := d.validate.Struct(v); err != nil {
		return ErrMalformed(actionName, err)
	}
	return nil
}

func (d *Dispatcher) flash(id string) func([]byte) error {
	return func([]byte) error {
		d.page.Indicator(id).Show()
		return nil
	}
}
