package backendtest

import (
	"encoding/json"
	"net/http"

	"tier-dashboard/internal/backend"
	"tier-dashboard/internal/model"
)

type statusResponse struct {
	Status string `json:"status"`
}

type typedBody struct {
	Type string `json:"type"`
}

func decodeField(r *http.Request, field string, v any) error {
	return json.Unmarshal([]byte(r.PostForm.Get(field)), v)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_news"

	var kind typedBody
	if err := decodeField(r, backend.FieldBody, &kind); err != nil {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON")
		return
	}

	if kind.Type == model.NewsLoadType {
		var req model.NewsQuery
		_ = decodeField(r, backend.FieldBody, &req)

		s.mu.Lock()
		msgs := append([]model.NewsMessage{}, s.news[req.Team]...)
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, model.NewsResponse{Msgs: msgs})
		return
	}

	var req model.NewsPost
	_ = decodeField(r, backend.FieldBody, &req)
	if req.Team == "" {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "team is required")
		return
	}

	s.mu.Lock()
	s.news[req.Team] = append(s.news[req.Team], model.NewsMessage{
		User:    sessionUser(r),
		Time:    s.Now().UTC().Format(TimeLayout),
		Content: req.Content,
	})
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusOK})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_join"

	var req model.JoinAccept
	if err := decodeField(r, backend.FieldBody, &req); err != nil {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON")
		return
	}
	if req.Action != model.JoinActionAccept {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "unsupported action")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[req.TeamName]
	if !ok {
		writeJSON(w, http.StatusOK, statusResponse{Status: "none"})
		return
	}
	if team.HasMember(req.UserName) {
		writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusExists})
		return
	}
	if !s.joinRequests[req.TeamName][req.UserName] {
		writeJSON(w, http.StatusOK, statusResponse{Status: "none"})
		return
	}

	delete(s.joinRequests[req.TeamName], req.UserName)
	team.Members = append(team.Members, model.TeamMember{Username: req.UserName})
	writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusInserts})
}

func (s *Server) handleMeetings(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_meetings"

	var kind typedBody
	if err := decodeField(r, backend.FieldBody, &kind); err != nil {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON")
		return
	}

	switch kind.Type {
	case model.MeetingCreateType:
		var req model.MeetingCreate
		_ = decodeField(r, backend.FieldBody, &req)

		s.mu.Lock()
		s.meetings = append(s.meetings, model.Meeting{Team: req.Team, MeetingTime: req.Time, Content: req.Content})
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusOK})
	case model.MeetingQueryType:
		var req model.MeetingQuery
		_ = decodeField(r, backend.FieldBody, &req)

		s.mu.Lock()
		meetings := []model.Meeting{}
		for _, m := range s.meetings {
			if t, ok := s.teams[m.Team]; ok && t.HasMember(req.User) {
				meetings = append(meetings, m)
			}
		}
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, model.MeetingsResponse{Meetings: meetings})
	default:
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "unsupported type")
	}
}

func (s *Server) handleAssignments(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_assignments"

	var req model.AssignmentCreate
	if err := decodeField(r, backend.FieldBody, &req); err != nil {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON")
		return
	}

	s.mu.Lock()
	s.assignments = append(s.assignments, assignment{req})
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusOK})
}

func (s *Server) handleDeadlines(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_deadlines"

	var req model.DeadlineQuery
	if err := decodeField(r, backend.FieldBody, &req); err != nil {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON")
		return
	}

	s.mu.Lock()
	deadlines := []model.Deadline{}
	for _, a := range s.assignments {
		if a.Assignee == req.User {
			deadlines = append(deadlines, model.Deadline{Team: a.Team, Deadline: a.Deadline, Content: a.Content})
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, model.DeadlinesResponse{Deadlines: deadlines})
}

func (s *Server) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	var req model.TeamCreate
	if err := decodeField(r, backend.FieldCreateInfo, &req); err != nil {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON")
		return
	}
	if req.Name == "" {
		s.writeError(w, handlerName, http.StatusBadRequest, "BAD_REQUEST", "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[req.Name]; ok {
		writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusExists})
		return
	}

	team := &model.Team{TeamName: req.Name, Introduction: req.Intro}
	if leader := sessionUser(r); leader != "" {
		team.Members = append(team.Members, model.TeamMember{Username: leader, IsLeader: true})
	}
	s.teams[req.Name] = team
	writeJSON(w, http.StatusOK, statusResponse{Status: model.StatusOK})
}
