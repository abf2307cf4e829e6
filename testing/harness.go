package certtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/certsource/certreg/types"
)

// StatusLink is the polling handle the gateway server hands out for
// every accepted submission.
const StatusLink = "/batch_statuses?id=test-batch"

// GatewayServer is an httptest server speaking the gateway's REST
// surface: POST /api/batches accepting an opaque binary body, and
// GET /api/batch_statuses serving scripted status responses in order
// (the last response repeats once the script is exhausted).
type GatewayServer struct {
	*httptest.Server

	mu          sync.Mutex
	statuses    []types.StatusData
	statusCalls int
	submissions [][]byte
}

// NewGatewayServer starts a gateway server with the given status
// script. The server is shut down when the test ends.
func NewGatewayServer(t *testing.T, statuses ...types.StatusData) *GatewayServer {
	t.Helper()
	g := &GatewayServer{statuses: statuses}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/batches", g.handleSubmit)
	mux.HandleFunc("GET /api/batch_statuses", g.handleStatus)

	g.Server = httptest.NewServer(mux)
	t.Cleanup(g.Server.Close)
	return g
}

func (g *GatewayServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/octet-stream" {
		http.Error(w, "unexpected content type", http.StatusBadRequest)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g.mu.Lock()
	g.submissions = append(g.submissions, body)
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"link": StatusLink})
}

func (g *GatewayServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	i := g.statusCalls
	if i >= len(g.statuses) {
		i = len(g.statuses) - 1
	}
	g.statusCalls++
	status := g.statuses[i]
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// Submissions returns the raw bodies POSTed to the batches endpoint.
func (g *GatewayServer) Submissions() [][]byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([][]byte(nil), g.submissions...)
}

// StatusCalls returns how many status polls the server has answered.
func (g *GatewayServer) StatusCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.statusCalls
}
