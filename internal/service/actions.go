package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tier-dashboard/internal/backend"
	"tier-dashboard/internal/model"
	"tier-dashboard/internal/render"
	"tier-dashboard/internal/ui"
)

// Имена действий, используемые в логах и ошибках.
const (
	ActionPostNews         = "post_news"
	ActionLoadNews         = "load_news"
	ActionAcceptJoin       = "accept_join"
	ActionCreateMeeting    = "create_meeting"
	ActionLoadMeetings     = "load_meetings"
	ActionCreateAssignment = "create_assignment"
	ActionLoadDeadlines    = "load_deadlines"
	ActionCreateTeam       = "create_team"
)

// Адреса бэкенда.
const (
	EndpointNews        = "/team/news"
	EndpointJoin        = "/team/join"
	EndpointMeetings    = "/team/meetings"
	EndpointAssignments = "/team/assignments"
	EndpointDeadlines   = "/user/deadlines"
	EndpointTeamCreate  = "/team/create"
)

// TeamExistsMessage показывается, если имя команды уже занято.
const TeamExistsMessage = "team name exists, please choose another one"

// PostNews публикует содержимое поля сообщения в ленту текущей команды.
func (d *Dispatcher) PostNews(ctx context.Context) Result {
	payload := model.NewsPost{
		Team:    d.pc.Team,
		Content: d.page.Field(ui.MsgContent).Value(),
	}
	a := action{ActionPostNews, EndpointNews, backend.FieldBody, d.page.Control(ui.MsgPostConfirm)}
	return d.submit(ctx, a, payload, d.flash(ui.NewsSuccess))
}

// LoadNews загружает ленту новостей команды и дописывает её на доску новостей.
func (d *Dispatcher) LoadNews(ctx context.Context) Result {
	payload := model.NewsQuery{Type: model.NewsLoadType, Team: d.pc.Team}
	a := action{ActionLoadNews, EndpointNews, backend.FieldBody, d.page.Control(ui.NewsRefresh)}
	return d.submit(ctx, a, payload, func(body []byte) error {
		var resp model.NewsResponse
		if err := d.decode(ActionLoadNews, body, &resp); err != nil {
			return err
		}
		d.page.Board(ui.NewsBoard).Append(render.RenderFeed(resp.FeedItems(d.pc.Team))...)
		return nil
	})
}

// AcceptJoin принимает заявку из строки row. После ответа "inserts" кнопка строки
// получает подпись COMPLETE и больше не отправляет запросов.
func (d *Dispatcher) AcceptJoin(ctx context.Context, row *ui.JoinRow) Result {
	if row.Button.Terminal() {
		return Result{Action: ActionAcceptJoin, Err: ErrAlreadyComplete}
	}

	payload := model.JoinAccept{
		UserName: row.User.Value(),
		TeamName: d.pc.Team,
		Action:   model.JoinActionAccept,
	}
	a := action{ActionAcceptJoin, EndpointJoin, backend.FieldBody, row.Button}
	return d.submit(ctx, a, payload, func(body []byte) error {
		var resp model.StatusResponse
		if err := d.decode(ActionAcceptJoin, body, &resp); err != nil {
			return err
		}
		if resp.Status == model.StatusInserts {
			row.Button.Complete(ui.CompleteLabel)
		}
		return nil
	})
}

// CreateMeeting создаёт встречу текущей команды.
func (d *Dispatcher) CreateMeeting(ctx context.Context) Result {
	payload := model.MeetingCreate{
		Type:    model.MeetingCreateType,
		Team:    d.pc.Team,
		Content: d.page.Field(ui.MeetingContent).Value(),
		Time:    d.page.Field(ui.MeetingTime).Value(),
	}
	a := action{ActionCreateMeeting, EndpointMeetings, backend.FieldBody, d.page.Control(ui.MeetingCreateConfirm)}
	return d.submit(ctx, a, payload, d.flash(ui.MeetingSuccess))
}

// LoadMeetings загружает встречи пользователя на доску встреч.
func (d *Dispatcher) LoadMeetings(ctx context.Context) Result {
	payload := model.MeetingQuery{Type: model.MeetingQueryType, User: d.pc.User}
	a := action{ActionLoadMeetings, EndpointMeetings, backend.FieldBody, d.page.Control(ui.MeetingRefresh)}
	return d.submit(ctx, a, payload, func(body []byte) error {
		var resp model.MeetingsResponse
		if err := d.decode(ActionLoadMeetings, body, &resp); err != nil {
			return err
		}
		d.page.Board(ui.MeetingBoard).Append(render.RenderFeed(resp.FeedItems())...)
		return nil
	})
}

// CreateAssignment назначает задачу участнику, выбранному в метке исполнителя.
func (d *Dispatcher) CreateAssignment(ctx context.Context) Result {
	payload := model.AssignmentCreate{
		Team:     d.pc.Team,
		Assignee: d.page.Label(ui.AssignTargetMember).Value(),
		Content:  d.page.Field(ui.AssignContent).Value(),
		Deadline: d.page.Field(ui.AssignDeadline).Value(),
	}
	a := action{ActionCreateAssignment, EndpointAssignments, backend.FieldBody, d.page.Control(ui.AssignCreateConfirm)}
	return d.submit(ctx, a, payload, d.flash(ui.AssignSuccess))
}

// LoadDeadlines загружает дедлайны пользователя на доску дедлайнов.
func (d *Dispatcher) LoadDeadlines(ctx context.Context) Result {
	payload := model.DeadlineQuery{User: d.pc.User}
	a := action{ActionLoadDeadlines, EndpointDeadlines, backend.FieldBody, d.page.Control(ui.DeadlineRefresh)}
	return d.submit(ctx, a, payload, func(body []byte) error {
		var resp model.DeadlinesResponse
		if err := d.decode(ActionLoadDeadlines, body, &resp); err != nil {
			return err
		}
		d.page.Board(ui.DeadlineBoard).Append(render.RenderFeed(resp.FeedItems())...)
		return nil
	})
}

// CreateTeam создаёт команду. Ответ "exists" показывает предупреждение о занятом имени,
// любой другой статус: индикатор успеха.
func (d *Dispatcher) CreateTeam(ctx context.Context) Result {
	payload := model.TeamCreate{
		Name:  d.page.Field(ui.TeamCreateName).Value(),
		Intro: d.page.Field(ui.TeamCreateIntro).Value(),
	}
	a := action{ActionCreateTeam, EndpointTeamCreate, backend.FieldCreateInfo, d.page.Control(ui.TeamCreateConfirm)}
	return d.submit(ctx, a, payload, func(body []byte) error {
		var resp model.StatusResponse
		if err := d.decode(ActionCreateTeam, body, &resp); err != nil {
			return err
		}
		if resp.Status == model.StatusExists {
			d.page.Alert(TeamExistsMessage)
			return ErrRejection(ActionCreateTeam, "team name exists")
		}
		d.page.Indicator(ui.TeamCreateSuccess).Show()
		return nil
	})
}

// Ready загружает встречи и дедлайны одновременно, как при открытии дашборда.
// Каждая доска заполняется по мере прихода своего ответа. Ошибка одной загрузки
// не прерывает другую: Ready всегда дожидается обеих, а первая ошибка попадает в лог.
func (d *Dispatcher) Ready(ctx context.Context) (meetings, deadlines Result) {
	var g errgroup.Group
	g.Go(func() error {
		meetings = d.LoadMeetings(ctx)
		return meetings.Err
	})
	g.Go(func() error {
		deadlines = d.LoadDeadlines(ctx)
		return deadlines.Err
	})
	if err := g.Wait(); err != nil {
		d.log.WithError(err).Warn("ready incomplete")
	}
	return meetings, deadlines
}
