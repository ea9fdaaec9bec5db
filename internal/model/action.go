package model

// Payload-записи действий дашборда. Пустые значения сериализуются как "",
// поэтому omitempty здесь не используется.

// NewsPost публикует сообщение в ленту команды.
type NewsPost struct {
	Team    string `json:"team"`
	Content string `json:"content"`
}

// NewsQuery запрашивает ленту новостей команды.
type NewsQuery struct {
	Type string `json:"type"`
	Team string `json:"team"`
}

// JoinAccept подтверждает заявку пользователя на вступление в команду.
type JoinAccept struct {
	UserName string `json:"user_name"`
	TeamName string `json:"team_name"`
	Action   string `json:"action"`
}

// MeetingCreate создаёт встречу команды.
type MeetingCreate struct {
	Type    string `json:"type"`
	Team    string `json:"team"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// MeetingQuery запрашивает встречи всех команд пользователя.
type MeetingQuery struct {
	Type string `json:"type"`
	User string `json:"user"`
}

// AssignmentCreate назначает задачу участнику команды.
type AssignmentCreate struct {
	Team     string `json:"team"`
	Assignee string `json:"assignee"`
	Content  string `json:"content"`
	Deadline string `json:"deadline"`
}

// DeadlineQuery запрашивает дедлайны пользователя.
type DeadlineQuery struct {
	User string `json:"user"`
}

// TeamCreate создаёт новую команду.
type TeamCreate struct {
	Name  string `json:"name"`
	Intro string `json:"intro"`
}

const (
	NewsLoadType      = "load_news"
	MeetingCreateType = "create"
	MeetingQueryType  = "query"
	JoinActionAccept  = "accept"

	StatusInserts = "inserts"
	StatusExists  = "exists"
	StatusOK      = "ok"
)
