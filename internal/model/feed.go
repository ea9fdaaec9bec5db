package model

// FeedItem: элемент ленты (встреча, дедлайн или сообщение), только для чтения.
type FeedItem struct {
	Team      string
	Author    string
	Content   string
	Timestamp string
}

// NewsMessage: сообщение из ответа /team/news. Пустое содержимое допустимо,
// автор и время обязательны.
type NewsMessage struct {
	User    string `json:"user" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Content string `json:"content"`
}

// Meeting: встреча из ответа /team/meetings.
type Meeting struct {
	Team        string `json:"team" validate:"required"`
	MeetingTime string `json:"meeting_time" validate:"required"`
	Content     string `json:"content"`
}

// Deadline: дедлайн задачи из ответа /user/deadlines.
type Deadline struct {
	Team     string `json:"team" validate:"required"`
	Deadline string `json:"deadline" validate:"required"`
	Content  string `json:"content"`
}

// StatusResponse: ответ /team/join и /team/create. Пустой статус считается некорректным ответом.
type StatusResponse struct {
	Status string `json:"status" validate:"required"`
}

// NewsResponse: ответ на запрос ленты новостей.
type NewsResponse struct {
	Msgs []NewsMessage `json:"msgs" validate:"required,dive"`
}

// MeetingsResponse: ответ на запрос встреч.
type MeetingsResponse struct {
	Meetings []Meeting `json:"meetings" validate:"required,dive"`
}

// DeadlinesResponse: ответ на запрос дедлайнов.
type DeadlinesResponse struct {
	Deadlines []Deadline `json:"deadlines" validate:"required,dive"`
}

// FeedItems переводит сообщения в элементы ленты; команда берётся из контекста страницы.
func (r NewsResponse) FeedItems(team string) []FeedItem {
	items := make([]FeedItem, 0, len(r.Msgs))
	for _, m := range r.Msgs {
		items = append(items, FeedItem{Team: team, Author: m.User, Content: m.Content, Timestamp: m.Time})
	}
	return items
}

// FeedItems переводит встречи в элементы ленты.
func (r MeetingsResponse) FeedItems() []FeedItem {
	items := make([]FeedItem, 0, len(r.Meetings))
	for _, m := range r.Meetings {
		items = append(items, FeedItem{Team: m.Team, Content: m.Content, Timestamp: m.MeetingTime})
	}
	return items
}

// FeedItems переводит дедлайны в элементы ленты.
func (r DeadlinesResponse) FeedItems() []FeedItem {
	items := make([]FeedItem, 0, len(r.Deadlines))
	for _, d := range r.Deadlines {
		items = append(items, FeedItem{Team: d.Team, Content: d.Content, Timestamp: d.Deadline})
	}
	return items
}
