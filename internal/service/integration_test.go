package service_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tier-dashboard/internal/backend"
	"tier-dashboard/internal/backend/backendtest"
	"tier-dashboard/internal/model"
	"tier-dashboard/internal/render"
	"tier-dashboard/internal/service"
	"tier-dashboard/internal/ui"
)

func newStack(t *testing.T, xsrf string) (*backendtest.Server, *service.Dispatcher) {
	t.Helper()

	stub := backendtest.New(quietLogger())
	srv := httptest.NewServer(stub.Router())
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(backend.Options{BaseURL: srv.URL, XSRF: xsrf, Session: "alice"})
	require.NoError(t, err)

	page := ui.NewPage(time.Second, nil)
	d := service.NewDispatcher(client, page, model.PageContext{Team: "gophers", User: "alice"}, quietLogger())
	return stub, d
}

func TestIntegration_PendingRequestLeavesControlUntouched(t *testing.T) {
	stub, d := newStack(t, "token")
	release := stub.Block(service.EndpointMeetings)
	defer release()

	d.Page().Field(ui.MeetingContent).Set("standup")
	control := d.Page().Control(ui.MeetingCreateConfirm)
	before := control.Label()

	done := make(chan service.Result, 1)
	go func() { done <- d.CreateMeeting(context.Background()) }()

	require.Eventually(t, func() bool { return control.InFlight() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(stub.Requests()) == 1 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, before, control.Label())
	assert.False(t, control.Terminal())
	assert.False(t, d.Page().Indicator(ui.MeetingSuccess).Visible())

	select {
	case <-done:
		t.Fatal("request resolved while the backend was blocked")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	res := <-done
	require.True(t, res.OK(), "%v", res.Err)
	assert.True(t, d.Page().Indicator(ui.MeetingSuccess).Visible())
	assert.Zero(t, control.InFlight())
}

func TestIntegration_ResubmissionIsNotGuarded(t *testing.T) {
	stub, d := newStack(t, "token")
	d.Page().Field(ui.MsgContent).Set("hello")

	require.True(t, d.PostNews(context.Background()).OK())
	require.True(t, d.PostNews(context.Background()).OK())

	assert.Len(t, stub.News("gophers"), 2)
}

func TestIntegration_MissingXSRFCookie(t *testing.T) {
	stub, d := newStack(t, "")
	d.Page().Field(ui.MsgContent).Set("hello")

	res := d.PostNews(context.Background())

	require.Len(t, stub.Requests(), 1)
	assert.Empty(t, stub.Requests()[0].XSRF)
	assert.True(t, service.IsKind(res.Err, service.KindTransport))

	var ae *service.ActionError
	require.ErrorAs(t, res.Err, &ae)
	assert.Equal(t, 403, ae.Status)
	assert.False(t, d.Page().Indicator(ui.NewsSuccess).Visible())
}

func TestIntegration_AcceptJoinFlow(t *testing.T) {
	stub, d := newStack(t, "token")
	stub.AddTeam(model.Team{TeamName: "gophers", Members: []model.TeamMember{{Username: "alice", IsLeader: true}}})
	stub.AddJoinRequest("gophers", "bob")

	row := d.Page().JoinRow("bob")
	require.True(t, d.AcceptJoin(context.Background(), row).OK())
	assert.Equal(t, ui.CompleteLabel, row.Button.Label())

	team, ok := stub.Team("gophers")
	require.True(t, ok)
	assert.True(t, team.HasMember("bob"))

	other := d.Page().JoinRow("carol")
	require.True(t, d.AcceptJoin(context.Background(), other).OK())
	assert.Equal(t, ui.AcceptLabel, other.Button.Label())
}

func TestIntegration_ReadyFillsBothBoards(t *testing.T) {
	stub, d := newStack(t, "token")
	stub.AddTeam(model.Team{TeamName: "gophers", Members: []model.TeamMember{{Username: "alice"}}})
	stub.AddMeeting(model.Meeting{Team: "gophers", MeetingTime: "2026-10-20 10:00:00", Content: "standup"})
	stub.AddMeeting(model.Meeting{Team: "other", MeetingTime: "2026-10-20 11:00:00", Content: "hidden"})
	stub.AddAssignment(model.AssignmentCreate{Team: "gophers", Assignee: "alice", Content: "docs", Deadline: "2026-10-25 18:00:00"})
	stub.AddAssignment(model.AssignmentCreate{Team: "gophers", Assignee: "alice", Content: "tests", Deadline: "2026-10-26 18:00:00"})

	meetings, deadlines := d.Ready(context.Background())
	require.True(t, meetings.OK(), "%v", meetings.Err)
	require.True(t, deadlines.OK(), "%v", deadlines.Err)

	assert.Equal(t, 1, d.Page().Board(ui.MeetingBoard).Len())
	assert.Equal(t, 2, d.Page().Board(ui.DeadlineBoard).Len())
}

func TestIntegration_CreateTeamCollision(t *testing.T) {
	stub, d := newStack(t, "token")
	stub.AddTeam(model.Team{TeamName: "gophers"})

	d.Page().Field(ui.TeamCreateName).Set("gophers")
	res := d.CreateTeam(context.Background())
	assert.True(t, service.IsKind(res.Err, service.KindRejection))
	assert.False(t, d.Page().Indicator(ui.TeamCreateSuccess).Visible())

	reqs := stub.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, backend.FieldCreateInfo, reqs[0].Field)
	assert.Equal(t, "token", reqs[0].XSRF)
	assert.NotEmpty(t, reqs[0].RequestID)
	assert.ElementsMatch(t, []string{"name", "intro"}, reqs[0].Keys())

	d.Page().Field(ui.TeamCreateName).Set("rustaceans")
	require.True(t, d.CreateTeam(context.Background()).OK())

	team, ok := stub.Team("rustaceans")
	require.True(t, ok)
	assert.True(t, team.HasMember("alice"))
}

func TestIntegration_LoadsAppendInArrivalOrder(t *testing.T) {
	stub, d := newStack(t, "token")
	hold := stub.Hold(service.EndpointDeadlines)
	t.Cleanup(hold.ReleaseAll)

	stub.AddAssignment(model.AssignmentCreate{Team: "gophers", Assignee: "alice", Content: "a1", Deadline: "2026-10-25 18:00:00"})
	stub.AddAssignment(model.AssignmentCreate{Team: "gophers", Assignee: "alice", Content: "a2", Deadline: "2026-10-26 18:00:00"})

	first := make(chan service.Result, 1)
	go func() { first <- d.LoadDeadlines(context.Background()) }()
	require.Eventually(t, func() bool { return hold.Arrived() == 1 }, time.Second, 5*time.Millisecond)

	stub.ClearAssignments()
	stub.AddAssignment(model.AssignmentCreate{Team: "gophers", Assignee: "alice", Content: "b1", Deadline: "2026-10-27 18:00:00"})

	second := make(chan service.Result, 1)
	go func() { second <- d.LoadDeadlines(context.Background()) }()
	require.Eventually(t, func() bool { return hold.Arrived() == 2 }, time.Second, 5*time.Millisecond)

	hold.Release(1)
	require.True(t, (<-second).OK())
	hold.Release(0)
	require.True(t, (<-first).OK())

	frags := d.Page().Board(ui.DeadlineBoard).Fragments()
	require.Len(t, frags, 3)
	assert.Equal(t, []string{"b1", "a1", "a2"}, []string{frags[0].Body, frags[1].Body, frags[2].Body})
	assert.Equal(t, render.SideDefault, frags[0].Side)
	assert.Equal(t, render.SideDefault, frags[1].Side, "each response starts its own parity")
	assert.Equal(t, render.SideInverted, frags[2].Side)
}

func TestIntegration_ReadyWaitsForBothLoads(t *testing.T) {
	stub := backendtest.New(quietLogger())
	srv := httptest.NewServer(stub.Router())
	t.Cleanup(srv.Close)
	stub.AddAssignment(model.AssignmentCreate{Team: "gophers", Assignee: "alice", Content: "docs", Deadline: "2026-10-25 18:00:00"})
	stub.Respond(service.EndpointMeetings, 500, `{"error":{"code":"INTERNAL"}}`)

	client, err := backend.NewClient(backend.Options{BaseURL: srv.URL, XSRF: "token", Session: "alice"})
	require.NoError(t, err)

	log, hook := logtest.NewNullLogger()
	d := service.NewDispatcher(client, ui.NewPage(time.Second, nil), model.PageContext{Team: "gophers", User: "alice"}, log)

	meetings, deadlines := d.Ready(context.Background())

	assert.True(t, service.IsKind(meetings.Err, service.KindTransport))
	require.True(t, deadlines.OK(), "%v", deadlines.Err)
	assert.Zero(t, d.Page().Board(ui.MeetingBoard).Len())
	assert.Equal(t, 1, d.Page().Board(ui.DeadlineBoard).Len())

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Message == "ready incomplete" && e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}
