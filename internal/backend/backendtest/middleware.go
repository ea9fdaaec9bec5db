package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/sirupsen/logrus"

	"tier-dashboard/internal/backend"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, handlerName string, status int, code, msg string) {
	s.log.WithFields(logrus.Fields{
		"handler": handlerName,
		"code":    code,
		"status":  status,
	}).Warn(msg)

	resp := errorResponse{}
	resp.Error.Code = code
	resp.Error.Message = msg
	writeJSON(w, status, resp)
}

// record сохраняет каждый POST до разбора маршрутов.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			rec := Recorded{
				Path:      r.URL.Path,
				XSRF:      r.PostForm.Get(backend.XSRFCookie),
				RequestID: r.Header.Get(backend.RequestIDHeader),
			}
			for _, field := range []string{backend.FieldBody, backend.FieldCreateInfo} {
				if _, ok := r.PostForm[field]; ok {
					rec.Field = field
					rec.Raw = r.PostForm.Get(field)
					break
				}
			}
			s.mu.Lock()
			s.requests = append(s.requests, rec)
			s.mu.Unlock()
		}
		next.ServeHTTP(w, r)
	})
}

// intercept применяет Block, Respond и Hold.
func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		block, blocked := s.blocks[r.URL.Path]
		ov, overridden := s.overrides[r.URL.Path]
		hold := s.holds[r.URL.Path]
		s.mu.Unlock()

		if blocked {
			select {
			case <-block:
			case <-r.Context().Done():
				return
			}
		}
		if overridden {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(ov.status)
			_, _ = w.Write([]byte(ov.body))
			return
		}
		if hold != nil {
			gate := hold.arrive()
			rec := httptest.NewRecorder()
			next.ServeHTTP(rec, r)
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
			for k, v := range rec.Header() {
				w.Header()[k] = v
			}
			w.WriteHeader(rec.Code)
			_, _ = w.Write(rec.Body.Bytes())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkXSRF сверяет поле _xsrf с одноимённой cookie.
func (s *Server) checkXSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.RequireXSRF {
			next.ServeHTTP(w, r)
			return
		}
		token := r.PostForm.Get(backend.XSRFCookie)
		cookie, err := r.Cookie(backend.XSRFCookie)
		if err != nil || token == "" || cookie.Value != token {
			s.writeError(w, "xsrf", http.StatusForbidden, "FORBIDDEN", "'_xsrf' argument missing or mismatched")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionUser(r *http.Request) string {
	c, err := r.Cookie(backend.SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}
