// Package backendtest реализует in-memory двойник бэкенда дашборда для тестов:
// те же маршруты, форма запросов и JSON-ответы, что у настоящего сервера.
package backendtest

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"tier-dashboard/internal/backend"
	"tier-dashboard/internal/model"
)

// TimeLayout: формат времени, который использует дашборд.
const TimeLayout = "2006-01-02 15:04:05"

// Recorded описывает принятый запрос.
type Recorded struct {
	Path      string
	XSRF      string
	Field     string
	Raw       string
	RequestID string
}

// Keys возвращает ключи JSON-нагрузки запроса.
func (r Recorded) Keys() []string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(r.Raw), &m); err != nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

type assignment struct {
	model.AssignmentCreate
}

type override struct {
	status int
	body   string
}

// Server: двойник бэкенда. Нулевое значение не готово к работе, используйте New.
type Server struct {
	// RequireXSRF включает проверку совпадения поля _xsrf и cookie _xsrf.
	RequireXSRF bool
	// Now задаёт время публикации новостей.
	Now func() time.Time

	log *logrus.Entry

	mu           sync.Mutex
	teams        map[string]*model.Team
	joinRequests map[string]map[string]bool
	news         map[string][]model.NewsMessage
	meetings     []model.Meeting
	assignments  []assignment
	requests     []Recorded
	overrides    map[string]override
	blocks       map[string]chan struct{}
	holds        map[string]*Hold
}

// New создаёт пустой двойник бэкенда.
func New(log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Server{
		RequireXSRF:  true,
		Now:          time.Now,
		log:          log.WithField("component", "backendtest"),
		teams:        make(map[string]*model.Team),
		joinRequests: make(map[string]map[string]bool),
		news:         make(map[string][]model.NewsMessage),
		overrides:    make(map[string]override),
		blocks:       make(map[string]chan struct{}),
		holds:        make(map[string]*Hold),
	}
}

// Router собирает маршруты бэкенда.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://*", "https://*"},
		AllowedMethods:   []string{http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", backend.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Use(s.record, s.intercept)

	r.Get("/health", s.handleHealth)

	r.Route("/team", func(r chi.Router) {
		r.With(s.checkXSRF).Post("/news", s.handleNews)
		r.With(s.checkXSRF).Post("/join", s.handleJoin)
		r.With(s.checkXSRF).Post("/meetings", s.handleMeetings)
		r.With(s.checkXSRF).Post("/assignments", s.handleAssignments)
		r.With(s.checkXSRF).Post("/create", s.handleTeamCreate)
	})

	r.Route("/user", func(r chi.Router) {
		r.With(s.checkXSRF).Post("/deadlines", s.handleDeadlines)
	})

	return r
}

// AddTeam добавляет команду вместе с участниками.
func (s *Server) AddTeam(t model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team := t
	team.Members = append([]model.TeamMember(nil), t.Members...)
	s.teams[t.TeamName] = &team
}

// AddJoinRequest регистрирует заявку пользователя на вступление в команду.
func (s *Server) AddJoinRequest(team, user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joinRequests[team] == nil {
		s.joinRequests[team] = make(map[string]bool)
	}
	s.joinRequests[team][user] = true
}

// AddMeeting добавляет встречу.
func (s *Server) AddMeeting(m model.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append(s.meetings, m)
}

// AddAssignment добавляет задачу с дедлайном.
func (s *Server) AddAssignment(a model.AssignmentCreate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append(s.assignments, assignment{a})
}

// ClearAssignments удаляет все задачи.
func (s *Server) ClearAssignments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = nil
}

// Team возвращает копию команды по имени.
func (s *Server) Team(name string) (model.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[name]
	if !ok {
		return model.Team{}, false
	}
	return *t, true
}

// News возвращает сообщения команды.
func (s *Server) News(team string) []model.NewsMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.NewsMessage(nil), s.news[team]...)
}

// Requests возвращает принятые запросы в порядке поступления.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// Respond заставляет маршрут отвечать фиксированным статусом и телом.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = override{status: status, body: body}
}

// Block подвешивает запросы к маршруту до вызова release.
func (s *Server) Block(path string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.blocks[path] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.blocks, path)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Hold задерживает ответы маршрута по одному. Ответ вычисляется в момент
// поступления запроса, а отдаётся клиенту только после Release с его номером.
type Hold struct {
	mu      sync.Mutex
	arrived int
	gates   []chan struct{}
	closed  []bool
}

// Hold включает поштучную задержку ответов маршрута.
func (s *Server) Hold(path string) *Hold {
	h := &Hold{}
	s.mu.Lock()
	s.holds[path] = h
	s.mu.Unlock()
	return h
}

// Arrived возвращает число запросов, поступивших на задержанный маршрут.
func (h *Hold) Arrived() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.arrived
}

// Release отпускает ответ на n-й запрос (с нуля). Повторный вызов ничего не делает.
func (h *Hold) Release(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.grow(n)
	if !h.closed[n] {
		h.closed[n] = true
		close(h.gates[n])
	}
}

// ReleaseAll отпускает все поступившие запросы.
func (h *Hold) ReleaseAll() {
	for i := 0; i < h.Arrived(); i++ {
		h.Release(i)
	}
}

func (h *Hold) arrive() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.arrived
	h.arrived++
	h.grow(n)
	return h.gates[n]
}

func (h *Hold) grow(n int) {
	for len(h.gates) <= n {
		h.gates = append(h.gates, make(chan struct{}))
		h.closed = append(h.closed, false)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
