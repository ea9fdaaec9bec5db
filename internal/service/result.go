package service

import "time"

// Result: итог действия: Success с телом ответа или Failure с причиной в Err.
type Result struct {
	Action    string
	RequestID string
	Body      []byte
	Err       error
}

// OK сообщает, что действие завершилось успехом.
func (r Result) OK() bool {
	return r.Err == nil
}

// Completion передаётся хуку завершения ровно один раз на каждый отправленный запрос.
type Completion struct {
	Action    string
	RequestID string
	Endpoint  string
	Duration  time.Duration
	Err       error
}

// CompletionHook вызывается после каждого запроса независимо от исхода.
type CompletionHook func(Completion)
