// Package hrmtest runs an in-process stand-in for the HR REST API.
package hrmtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/hrm"
)

// DefaultSessionID is the session cookie value the server accepts.
const DefaultSessionID = "test-session"

// Request is what the server saw of one incoming call.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Cookie      string
	ContentType string
	Body        string
}

type cannedResponse struct {
	status int
	body   string
}

// Server is an httptest.Server serving the HR endpoints. Calls without the
// session cookie are answered with 401.
type Server struct {
	*httptest.Server
	SessionID string

	mu        sync.Mutex
	requests  []Request
	overrides map[string]cannedResponse
	nextID    atomic.Int64
}

// NewServer starts a server. Close it when done.
func NewServer() *Server {
	s := &Server{
		SessionID: DefaultSessionID,
		overrides: map[string]cannedResponse{},
	}
	s.nextID.Store(100)

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.requireSession)
	r.Use(s.override)

	r.Get(hrm.HolidaysEndpoint, static(HolidaysJSON))
	r.Get(hrm.LeaveListEndpoint, static(LeaveListJSON))
	r.Get(hrm.LeaveTypesEndpoint, static(LeaveTypesJSON))
	r.Get(hrm.LeaveReportEndpoint, static(LeaveReportJSON))
	r.Get(hrm.WorkWeekEndpoint, static(WorkWeekJSON))
	r.Get(hrm.EmployeeCountEndpoint, static(EmployeeCountJSON))
	r.Get(hrm.EmployeesEndpoint, static(EmployeesJSON))
	r.Get(hrm.VacanciesEndpoint, static(VacanciesJSON))
	r.Get(hrm.JobTitlesEndpoint, static(JobTitlesJSON))
	r.Get(hrm.EmployeesEndpoint+"/{empNumber}/personal-details", static(PersonalDetailsJSON))

	r.Post(hrm.EmployeesEndpoint, s.create("empNumber"))
	r.Post(hrm.CandidatesEndpoint, s.create("id"))
	r.Post(hrm.JobCategoriesEndpoint, s.create("id"))
	r.Post(hrm.ReportsEndpoint, s.create("id"))

	r.Put(hrm.TerminationReasonsEndpoint+"/{id}", s.update("id"))
	r.Put(hrm.EmployeesEndpoint+"/{empNumber}", s.update("empNumber"))
	r.Put(hrm.EmployeesEndpoint+"/{empNumber}/personal-details", s.update("empNumber"))

	r.Delete(hrm.EmployeesEndpoint, deleteIDs(true))
	r.Delete(hrm.CandidatesEndpoint, deleteIDs(false))

	s.Server = httptest.NewServer(r)
	return s
}

// Handle makes method+path answer with a fixed status and body, taking
// precedence over the built-in routes.
func (s *Server) Handle(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = cannedResponse{status: status, body: body}
}

// Requests returns the calls received so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent call, or false if none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		req := Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.Query(),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		}
		if c, err := r.Cookie(v1alpha1.DefaultCookieName); err == nil {
			req.Cookie = c.Value
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(v1alpha1.DefaultCookieName)
		if err != nil || c.Value != s.SessionID {
			writeJSON(w, http.StatusUnauthorized, UnauthorizedJSON)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		canned, ok := s.overrides[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			writeJSON(w, canned.status, canned.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func static(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	}
}

// create echoes the posted object back with a fresh id under idKey.
func (s *Server) create(idKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, ok := decodeObject(w, r)
		if !ok {
			return
		}
		obj[idKey] = s.nextID.Add(1)
		writeData(w, obj)
	}
}

// update echoes the object back with the id taken from the URL.
func (s *Server) update(idKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, ok := decodeObject(w, r)
		if !ok {
			return
		}
		id, err := strconv.Atoi(chi.URLParam(r, idKey))
		if err != nil {
			writeJSON(w, http.StatusNotFound, `{"error": {"status": "404", "message": "Record Not Found"}}`)
			return
		}
		obj[idKey] = id
		writeData(w, obj)
	}
}

// deleteIDs answers {"ids": [...]} with the deleted ids, as strings when
// asStrings is set (the PIM module does that).
func deleteIDs(asStrings bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			IDs []int `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			writeJSON(w, http.StatusUnprocessableEntity, `{"error": {"status": "422", "message": "Invalid Parameter", "data": {"invalidParamKeys": {"ids": "Expected array"}}}}`)
			return
		}
		data := make([]interface{}, len(req.IDs))
		for i, id := range req.IDs {
			if asStrings {
				data[i] = strconv.Itoa(id)
			} else {
				data[i] = id
			}
		}
		writeData(w, data)
	}
}

func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	obj := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, `{"error": {"status": "422", "message": "Invalid Parameter"}}`)
		return nil, false
	}
	return obj, true
}

func writeData(w http.ResponseWriter, data interface{}) {
	body, err := json.Marshal(map[string]interface{}{"data": data, "meta": []interface{}{}, "rels": []interface{}{}})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, `{"error": {"status": "500"}}`)
		return
	}
	writeJSON(w, http.StatusOK, string(body))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
