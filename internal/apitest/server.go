// Package apitest runs an in-process fake of the storefront REST API for
// tests. Routes answer with the standard response envelope; the server can
// demand a bearer token and inject one-off failures.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"edumart/internal/api"
	"edumart/internal/session"

	"github.com/gorilla/mux"
)

const basePath = "/api"

// Reply is what a route answers with. A zero Status means 200.
type Reply struct {
	Status  int
	Failed  bool
	Message string
	Data    any
	Errors  []string
}

func OK(data any) Reply {
	return Reply{Status: http.StatusOK, Data: data}
}

// Fail answers with an error status and envelope.
func Fail(status int, message string, errs ...string) Reply {
	return Reply{Status: status, Failed: true, Message: message, Errors: errs}
}

// Reject answers 200 with success=false.
func Reject(message string, errs ...string) Reply {
	return Reply{Status: http.StatusOK, Failed: true, Message: message, Errors: errs}
}

type HandlerFunc func(r *http.Request) Reply

type Server struct {
	*httptest.Server
	Router *mux.Router

	mu       sync.Mutex
	token    string
	calls    map[string]int
	failNext map[string]Reply
	delay    map[string]time.Duration
}

func NewServer(t testing.TB) *Server {
	s := &Server{
		Router:   mux.NewRouter(),
		calls:    make(map[string]int),
		failNext: make(map[string]Reply),
		delay:    make(map[string]time.Duration),
	}
	s.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeReply(w, Fail(http.StatusNotFound, "route not found"))
	})
	s.Server = httptest.NewServer(s.Router)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) BaseURL() string {
	return s.URL + basePath
}

// Client returns a transport client pointed at the fake.
func (s *Server) Client(sess *session.Session, opts ...api.Option) *api.Client {
	return api.NewClient(s.BaseURL(), 5*time.Second, sess, opts...)
}

// RequireToken makes every route except login and register answer 401
// unless the request carries token.
func (s *Server) RequireToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Handle registers fn for method and a path relative to the API base, in
// gorilla/mux syntax such as "/Cart/{id}".
func (s *Server) Handle(method, path string, fn HandlerFunc) {
	route := routeKey(method, path)
	s.Router.HandleFunc(basePath+path, func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[route]++
		token := s.token
		injected, fail := s.failNext[route]
		delete(s.failNext, route)
		wait := s.delay[route]
		s.mu.Unlock()

		if wait > 0 {
			time.Sleep(wait)
		}
		if token != "" && !public(path) && Bearer(r) != token {
			writeReply(w, Fail(http.StatusUnauthorized, "Unauthorized"))
			return
		}
		if fail {
			writeReply(w, injected)
			return
		}
		writeReply(w, fn(r))
	}).Methods(method)
}

// FailNext makes the next call to the route answer reply instead.
func (s *Server) FailNext(method, path string, reply Reply) {
	s.mu.Lock()
	s.failNext[routeKey(method, path)] = reply
	s.mu.Unlock()
}

// Delay makes every call to the route wait d before answering.
func (s *Server) Delay(method, path string, d time.Duration) {
	s.mu.Lock()
	s.delay[routeKey(method, path)] = d
	s.mu.Unlock()
}

// Calls reports how many requests reached the route.
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[routeKey(method, path)]
}

func Vars(r *http.Request) map[string]string {
	return mux.Vars(r)
}

// Decode reads the JSON request body into v.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Bearer extracts the bearer token from the Authorization header.
func Bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func public(path string) bool {
	return path == "/Auth/login" || path == "/Auth/register"
}

func routeKey(method, path string) string {
	return method + " " + path
}

func writeReply(w http.ResponseWriter, reply Reply) {
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	body := map[string]any{
		"success": !reply.Failed,
		"message": reply.Message,
		"data":    reply.Data,
	}
	if len(reply.Errors) > 0 {
		body["errors"] = reply.Errors
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
