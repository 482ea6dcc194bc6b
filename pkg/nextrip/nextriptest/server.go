// Package nextriptest serves canned NexTrip listings over HTTP for tests.
package nextriptest

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

type Response struct {
	Status int
	Body   string
}

// Fixture maps listing keys to canned responses. Directions are keyed by
// route, stops by "route/direction" and times by "route/direction/stop".
// Anything missing answers 404.
type Fixture struct {
	Routes     *Response
	Directions map[string]Response
	Stops      map[string]Response
	Times      map[string]Response
}

type Server struct {
	*httptest.Server

	mutex    sync.Mutex
	requests []*http.Request
}

// NewServer serves fixture on the default NexTrip paths
func NewServer(fixture Fixture) *Server {
	server := &Server{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /NexTrip/Routes", func(w http.ResponseWriter, r *http.Request) {
		server.record(r)
		if fixture.Routes == nil {
			http.NotFound(w, r)
			return
		}
		write(w, *fixture.Routes)
	})
	mux.HandleFunc("GET /NexTrip/Directions/{route}", func(w http.ResponseWriter, r *http.Request) {
		server.record(r)
		serve(w, r, fixture.Directions, r.PathValue("route"))
	})
	mux.HandleFunc("GET /NexTrip/Stops/{route}/{direction}", func(w http.ResponseWriter, r *http.Request) {
		server.record(r)
		serve(w, r, fixture.Stops, r.PathValue("route")+"/"+r.PathValue("direction"))
	})
	mux.HandleFunc("GET /NexTrip/{route}/{direction}/{stop}", func(w http.ResponseWriter, r *http.Request) {
		server.record(r)
		serve(w, r, fixture.Times, r.PathValue("route")+"/"+r.PathValue("direction")+"/"+r.PathValue("stop"))
	})

	server.Server = httptest.NewServer(mux)

	return server
}

// Requests returns every request received so far, oldest first
func (s *Server) Requests() []*http.Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]*http.Request(nil), s.requests...)
}

// Paths returns the path of every request received so far
func (s *Server) Paths() []string {
	var paths []string
	for _, r := range s.Requests() {
		paths = append(paths, r.URL.Path)
	}

	return paths
}

func (s *Server) record(r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.requests = append(s.requests, r)
}

func serve(w http.ResponseWriter, r *http.Request, responses map[string]Response, key string) {
	response, ok := responses[key]
	if !ok {
		http.NotFound(w, r)
		return
	}

	write(w, response)
}

func write(w http.ResponseWriter, response Response) {
	status := response.Status
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(response.Body))
}
