// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tournamentServer is an in-memory stand-in for the tournament backend,
// covering the endpoints exercised by the end-to-end scenarios.
type tournamentServer struct {
	mu          sync.Mutex
	nextID      int64
	submissions []map[string]any
	requests    int
}

func newTournamentServer() *tournamentServer {
	return &tournamentServer{nextID: 1000}
}

func (s *tournamentServer) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *tournamentServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/submissions":
			s.handleUpload(w, r)
		case r.Method == http.MethodGet && r.URL.Path == "/v2/users/@me/submissions":
			s.handleList(w, r)
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/dataset-config"):
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"roundId": 76, "live": true, "dataset": {"id": 4, "name": "e-kinetic"}}`))
		case r.Method == http.MethodGet:
			// dataset asset download
			body := []byte("binary-ish dataset content")
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			_, _ = w.Write(body)
		default:
			http.NotFound(w, r)
		}
	})
}

func (s *tournamentServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.submissions = append(s.submissions, map[string]any{
		"id":         id,
		"uploadedAt": "2023-04-07T18:30:00Z",
		"fileName":   "predictions.csv",
		"fileHash":   fmt.Sprintf("hash-%d", id),
		"comment":    r.FormValue("comment"),
		"user":       map[string]any{"id": 9, "username": "alice"},
		"crunch":     map[string]any{"number": 1, "roundId": 76, "at": "2023-04-07T18:00:00Z"},
		"public":     map[string]any{"success": true, "mean": 0.2},
	})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id})
}

func (s *tournamentServer) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.submissions)
}

func newE2EClient(t *testing.T, serverURL, apiKey string) *Client {
	t.Helper()

	opts := []Option{WithBaseURL(serverURL), WithDataBaseURL(serverURL)}
	if apiKey != "" {
		opts = append(opts, WithAPIKey(apiKey))
	}

	client, err := New(opts...)
	require.NoError(t, err)
	return client
}

func TestEndToEnd_UploadThenListed(t *testing.T) {
	backend := newTournamentServer()
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	client := newE2EClient(t, srv.URL, "k")
	ctx := context.Background()

	id, err := client.Upload(ctx, validPredictions(t), WithComment("first try"))
	require.NoError(t, err)
	assert.Positive(t, id)

	table, err := client.Submissions(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())

	listedID, err := table.Int(0, "id")
	require.NoError(t, err)
	assert.Equal(t, id, listedID)

	comment, err := table.Cell(0, "comment")
	require.NoError(t, err)
	assert.Equal(t, "first try", comment)
}

func TestEndToEnd_NoCredentialFailsBeforeNetwork(t *testing.T) {
	t.Setenv("CRUNCHDAO_API_KEY", "")

	backend := newTournamentServer()
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	client := newE2EClient(t, srv.URL, "")

	_, err := client.Submissions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Zero(t, backend.requestCount())
}

func TestEndToEnd_DownloadParquet(t *testing.T) {
	backend := newTournamentServer()
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	client := newE2EClient(t, srv.URL, "")
	dir := filepath.Join(t.TempDir(), "data")

	paths, err := client.DownloadData(context.Background(), dir, WithFormat(FormatParquet))
	require.NoError(t, err)
	require.Len(t, paths, 4)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	parquet := 0
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".parquet" {
			parquet++
		}
	}
	assert.Equal(t, 3, parquet)
}
