package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/de-tools/field-atlas/pkg/services/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Path  string
	Token string
	Body  map[string]any
}

// fakeServer mimics the sign-in, metadata and VizQL endpoints.
type fakeServer struct {
	t        *testing.T
	router   *chi.Mux
	server   *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{t: t, router: chi.NewRouter()}
	fs.router.Use(fs.record)
	fs.server = httptest.NewServer(fs.router)
	t.Cleanup(fs.server.Close)
	return fs
}

func (fs *fakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Path: r.URL.Path, Token: r.Header.Get("X-Tableau-Auth")}
		if r.Body != nil {
			data, err := io.ReadAll(r.Body)
			require.NoError(fs.t, err)
			if len(data) > 0 {
				require.NoError(fs.t, json.Unmarshal(data, &rec.Body))
			}
		}
		fs.mu.Lock()
		fs.requests = append(fs.requests, rec)
		fs.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (fs *fakeServer) config() *config.Config {
	return &config.Config{
		ServerAddress: fs.server.URL,
		Site:          "finance",
		TokenName:     "reporter",
		TokenSecret:   "s3cret",
		APIVersion:    config.DefaultAPIVersion,
		Timeout:       5 * time.Second,
	}
}

func (fs *fakeServer) client() *Client {
	return New(fs.config(), fs.server.Client())
}

func (fs *fakeServer) recorded() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func (fs *fakeServer) paths() []string {
	var res []string
	for _, r := range fs.recorded() {
		res = append(res, r.Path)
	}
	return res
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (fs *fakeServer) handleSignIn(token string) {
	fs.router.Post("/api/{version}/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"credentials":{"token":"`+token+`","site":{"id":"site-1","contentUrl":"finance"},"user":{"id":"user-1"}}}`)
	})
}

func (fs *fakeServer) handleSignOut() {
	fs.router.Post("/api/{version}/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
