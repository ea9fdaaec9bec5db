package ui

// Идентификаторы элементов страницы дашборда.
const (
	MsgContent     = "msg-content"
	PostTargetTeam = "post-target-team"
	NewsSuccess    = "new-success-btn"
	NewsBoard      = "news-timeline-board"

	MeetingTargetTeam = "meeting-target-team"
	MeetingContent    = "meeting-content"
	MeetingTime       = "meeting-time"
	MeetingSuccess    = "meeting-success-btn"
	MeetingBoard      = "meeting-timeline-board"

	AssignTargetTeam   = "assign-target-team"
	AssignTargetMember = "assign-target-member"
	AssignContent      = "assign-content"
	AssignDeadline     = "assign-deadline"
	AssignSuccess      = "assign-success-btn"

	DeadlineBoard = "deadline-timeline-board"

	TeamCreateName    = "team-create-name"
	TeamCreateIntro   = "team-create-intro"
	TeamCreateSuccess = "team-success-btn"
)

// Кнопки, запускающие действия.
const (
	MsgPostConfirm       = "msg-post-confirm-btn"
	NewsRefresh          = "news-refresh-btn"
	MeetingCreateConfirm = "meeting-create-confirm-btn"
	MeetingRefresh       = "meeting-refresh-btn"
	AssignCreateConfirm  = "assign-create-confirm-btn"
	DeadlineRefresh      = "deadline-refresh-btn"
	TeamCreateConfirm    = "team-create-confirm-btn"
)

// Подписи элементов.
const (
	NoneLabel     = "NONE"
	ConfirmLabel  = "CONFIRM"
	RefreshLabel  = "REFRESH"
	AcceptLabel   = "ACCEPT"
	CompleteLabel = "COMPLETE"
)
