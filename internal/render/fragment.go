// Package render строит фрагменты таймлайна из элементов ленты без живого DOM.
package render

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"tier-dashboard/internal/model"
)

// Side: вариант раскладки элемента таймлайна.
type Side int

const (
	SideDefault Side = iota
	SideInverted
)

const (
	InvertedClass = "timeline-inverted"
	BadgeClass    = "timeline-badge warning"
	BadgeIcon     = "glyphicon glyphicon-credit-card"
	TimeIcon      = "glyphicon glyphicon-time"
)

// String возвращает имя варианта.
func (s Side) String() string {
	if s == SideInverted {
		return "inverted"
	}
	return "default"
}

// Fragment описывает один элемент таймлайна: значок, заголовок с командой и автором,
// время и текст.
type Fragment struct {
	Side      Side
	Badge     string
	Icon      string
	Title     string
	Author    string
	Timestamp string
	Body      string
}

// SideFor выбирает вариант по чётности позиции: чётные по умолчанию, нечётные зеркально.
func SideFor(index int) Side {
	if index%2 == 0 {
		return SideDefault
	}
	return SideInverted
}

// RenderFeedItem строит фрагмент для элемента ленты на позиции index в ответе сервера.
func RenderFeedItem(item model.FeedItem, index int) Fragment {
	return Fragment{
		Side:      SideFor(index),
		Badge:     BadgeClass,
		Icon:      BadgeIcon,
		Title:     item.Team,
		Author:    item.Author,
		Timestamp: item.Timestamp,
		Body:      item.Content,
	}
}

// RenderFeed строит фрагменты в порядке, заданном сервером.
func RenderFeed(items []model.FeedItem) []Fragment {
	out := make([]Fragment, 0, len(items))
	for i, it := range items {
		out = append(out, RenderFeedItem(it, i))
	}
	return out
}

func element(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Node собирает дерево <li> фрагмента.
func (f Fragment) Node() *html.Node {
	li := element(atom.Li, "")
	if f.Side == SideInverted {
		li.Attr = []html.Attribute{{Key: "class", Val: InvertedClass}}
	}

	badge := element(atom.Div, f.Badge, element(atom.I, f.Icon))

	heading := element(atom.Div, "timeline-heading", element(atom.H4, "timeline-title", text(f.Title)))
	if f.Author != "" {
		heading.AppendChild(element(atom.H5, "timeline-author", text(f.Author)))
	}
	heading.AppendChild(element(atom.P, "",
		element(atom.Small, "text-muted", element(atom.I, TimeIcon), text(f.Timestamp)),
	))

	body := element(atom.Div, "timeline-body", element(atom.P, "", text(f.Body)))

	li.AppendChild(badge)
	li.AppendChild(element(atom.Div, "timeline-panel", heading, body))
	return li
}

// HTML сериализует фрагмент в разметку с экранированием текста.
func (f Fragment) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, f.Node()); err != nil {
		return "", err
	}
	return buf.String(), nil
}
