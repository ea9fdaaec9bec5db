package ui

import (
	"sync"
	"time"
)

// DefaultFlashWindow: 400 мс появления и 1000 мс задержки перед скрытием.
const DefaultFlashWindow = 1400 * time.Millisecond

// Alerter показывает пользователю блокирующее сообщение.
type Alerter interface {
	Alert(msg string)
}

// AlerterFunc позволяет использовать функцию как Alerter.
type AlerterFunc func(msg string)

// Alert вызывает f(msg).
func (f AlerterFunc) Alert(msg string) { f(msg) }

// JoinRow: строка заявки на вступление: имя пользователя и кнопка принятия.
type JoinRow struct {
	User   *Field
	Button *Control
}

// Page: реестр элементов страницы. Элемент создаётся при первом обращении,
// поэтому отсутствующее поле читается как пустая строка.
type Page struct {
	flashWindow time.Duration
	alerter     Alerter

	mu         sync.Mutex
	fields     map[string]*Field
	labels     map[string]*Field
	controls   map[string]*Control
	indicators map[string]*Indicator
	boards     map[string]*Board
	rows       map[string]*JoinRow
}

// NewPage создаёт страницу. Нулевое окно показа заменяется DefaultFlashWindow.
func NewPage(flashWindow time.Duration, alerter Alerter) *Page {
	if flashWindow <= 0 {
		flashWindow = DefaultFlashWindow
	}
	if alerter == nil {
		alerter = AlerterFunc(func(string) {})
	}
	p := &Page{
		flashWindow: flashWindow,
		alerter:     alerter,
		fields:      make(map[string]*Field),
		labels:      make(map[string]*Field),
		controls:    make(map[string]*Control),
		indicators:  make(map[string]*Indicator),
		boards:      make(map[string]*Board),
		rows:        make(map[string]*JoinRow),
	}
	for _, id := range []string{PostTargetTeam, MeetingTargetTeam, AssignTargetTeam, AssignTargetMember} {
		p.Label(id).Set(NoneLabel)
	}
	return p
}

// Field возвращает поле ввода по идентификатору.
func (p *Page) Field(id string) *Field {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.fields[id]
	if !ok {
		f = &Field{}
		p.fields[id] = f
	}
	return f
}

// Label возвращает текстовую метку по идентификатору.
func (p *Page) Label(id string) *Field {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.labels[id]
	if !ok {
		l = &Field{}
		p.labels[id] = l
	}
	return l
}

// Control возвращает кнопку по идентификатору.
func (p *Page) Control(id string) *Control {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.controls[id]
	if !ok {
		label := ConfirmLabel
		switch id {
		case NewsRefresh, MeetingRefresh, DeadlineRefresh:
			label = RefreshLabel
		}
		c = NewControl(label)
		p.controls[id] = c
	}
	return c
}

// Indicator возвращает индикатор успеха по идентификатору.
func (p *Page) Indicator(id string) *Indicator {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.indicators[id]
	if !ok {
		i = NewIndicator(p.flashWindow)
		p.indicators[id] = i
	}
	return i
}

// Board возвращает доску таймлайна по идентификатору.
func (p *Page) Board(id string) *Board {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.boards[id]
	if !ok {
		b = &Board{}
		p.boards[id] = b
	}
	return b
}

// JoinRow возвращает строку заявки пользователя.
func (p *Page) JoinRow(user string) *JoinRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.rows[user]
	if !ok {
		name := &Field{}
		name.Set(user)
		r = &JoinRow{User: name, Button: NewControl(AcceptLabel)}
		p.rows[user] = r
	}
	return r
}

// Alert передаёт сообщение пользователю.
func (p *Page) Alert(msg string) {
	p.alerter.Alert(msg)
}
