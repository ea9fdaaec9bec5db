// Package ui моделирует элементы страницы дашборда: поля ввода, метки выбора,
// кнопки, временные индикаторы успеха и доски таймлайна. Каждый элемент
// сериализует свои изменения сам, поэтому ответы, пришедшие одновременно,
// применяются по одному в порядке прихода.
package ui

import (
	"strings"
	"sync"
	"time"

	"tier-dashboard/internal/render"
)

// Field: поле ввода или текстовая метка.
type Field struct {
	mu    sync.Mutex
	value string
}

// Value возвращает текущее значение; у незаполненного поля это "".
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Set заменяет значение.
func (f *Field) Set(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Control: кнопка, запускающая действие. Состояние отправки не отражается визуально:
// кнопка не блокируется и не показывает индикатор загрузки.
type Control struct {
	mu       sync.Mutex
	label    string
	terminal bool
	inFlight int
}

// NewControl создаёт кнопку с подписью.
func NewControl(label string) *Control {
	return &Control{label: label}
}

// Label возвращает подпись кнопки.
func (c *Control) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label
}

// Complete переводит кнопку в конечное состояние с подписью label.
func (c *Control) Complete(label string) {
	c.mu.Lock()
	c.label = label
	c.terminal = true
	c.mu.Unlock()
}

// Terminal сообщает, что действие кнопки больше нельзя отправить.
func (c *Control) Terminal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terminal
}

// Begin отмечает начало запроса и возвращает функцию его завершения.
func (c *Control) Begin() (end func()) {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.inFlight--
			c.mu.Unlock()
		})
	}
}

// InFlight возвращает число незавершённых запросов; используется только для диагностики.
func (c *Control) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Indicator: временный индикатор успеха. Появляется сразу и сам скрывается
// через окно показа.
type Indicator struct {
	mu      sync.Mutex
	window  time.Duration
	visible bool
	gen     uint64
	shown   int
}

// NewIndicator создаёт скрытый индикатор с окном показа window.
func NewIndicator(window time.Duration) *Indicator {
	return &Indicator{window: window}
}

// Show показывает индикатор. Повторный показ перезапускает окно.
func (i *Indicator) Show() {
	i.mu.Lock()
	i.visible = true
	i.shown++
	i.gen++
	gen := i.gen
	i.mu.Unlock()

	time.AfterFunc(i.window, func() {
		i.mu.Lock()
		if i.gen == gen {
			i.visible = false
		}
		i.mu.Unlock()
	})
}

// Visible сообщает, виден ли индикатор.
func (i *Indicator) Visible() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.visible
}

// Shown возвращает, сколько раз индикатор показывался.
func (i *Indicator) Shown() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.shown
}

// Board: доска таймлайна. Только добавление; перед перезагрузкой её очищает вызывающий.
type Board struct {
	mu        sync.Mutex
	fragments []render.Fragment
}

// Append добавляет фрагменты в конец доски.
func (b *Board) Append(f ...render.Fragment) {
	b.mu.Lock()
	b.fragments = append(b.fragments, f...)
	b.mu.Unlock()
}

// Clear очищает доску.
func (b *Board) Clear() {
	b.mu.Lock()
	b.fragments = nil
	b.mu.Unlock()
}

// Fragments возвращает копию содержимого доски.
func (b *Board) Fragments() []render.Fragment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]render.Fragment(nil), b.fragments...)
}

// Len возвращает число фрагментов.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.fragments)
}

// HTML сериализует доску как последовательность элементов <li>.
func (b *Board) HTML() (string, error) {
	var sb strings.Builder
	for _, f := range b.Fragments() {
		s, err := f.HTML()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
