//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"

	"github.com/heartmarshall/dictionary-api/internal/adapter/mongodb"
	mongoword "github.com/heartmarshall/dictionary-api/internal/adapter/mongodb/word"
	"github.com/heartmarshall/dictionary-api/internal/adapter/postgres/testhelper"
	pgword "github.com/heartmarshall/dictionary-api/internal/adapter/postgres/word"
	"github.com/heartmarshall/dictionary-api/internal/app"
	"github.com/heartmarshall/dictionary-api/internal/config"
)

// backends lists every store the suite runs against.
var backends = []string{config.BackendMongo, config.BackendPostgres}

// ---------------------------------------------------------------------------
// Shared MongoDB container
// ---------------------------------------------------------------------------

var (
	mongoOnce sync.Once
	mongoURI  string
	mongoErr  error
)

func startMongo() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForLog("Waiting for connections"),
				wait.ForListeningPort("27017/tcp"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port()), nil
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
}

// setupTestServer bootstraps the application handler on a fresh store of the
// given backend. Each mongo test gets its own database.
func setupTestServer(t *testing.T, backend string, strict bool) *testServer {
	t.Helper()

	logger := zaptest.NewLogger(t)
	cfg := &config.Config{
		Store: config.StoreConfig{Backend: backend},
		HTTP:  config.HTTPConfig{StrictStatus: strict},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,HEAD,PUT,PATCH,POST,DELETE",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		},
	}

	var store *app.Store
	switch backend {
	case config.BackendMongo:
		mongoOnce.Do(func() { mongoURI, mongoErr = startMongo() })
		require.NoError(t, mongoErr, "start mongo")

		client, err := mongodb.Connect(context.Background(), config.MongoConfig{
			URI:            mongoURI,
			Database:       "e2e_" + strings.ReplaceAll(uuid.NewString()[:8], "-", ""),
			Collection:     "dictionary",
			ConnectTimeout: 10 * time.Second,
			AppName:        "dictionary-e2e",
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

		store = &app.Store{Words: mongoword.New(client.Words()), Pinger: client, Backend: backend}

	case config.BackendPostgres:
		pool := testhelper.SetupTestDB(t)
		store = &app.Store{Words: pgword.New(pool), Pinger: pool, Backend: backend}

	default:
		t.Fatalf("unknown backend %q", backend)
	}

	srv := httptest.NewServer(app.NewHandler(cfg, store, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// do sends a JSON request and decodes the JSON response into a map.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func tableWord(id string) map[string]any {
	return map[string]any{
		"id":            id,
		"name":          "Table",
		"partOfTheLang": "Noun",
		"gender":        "Neutral",
		"plural":        "Tables",
		"topic":         "Furniture",
	}
}

// listWords returns the data array of GET /dictionary.
func (ts *testServer) listWords(t *testing.T) []map[string]any {
	t.Helper()

	status, body := ts.do(t, http.MethodGet, "/dictionary", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])

	raw, ok := body["data"].([]any)
	require.True(t, ok, "expected data array, got %T", body["data"])

	words := make([]map[string]any, len(raw))
	for i, r := range raw {
		words[i] = r.(map[string]any)
	}
	return words
}
