package adaptor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/repository"
)

// envelope mirrors utils.Response for decoding in tests
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func sampleTime() time.Time {
	return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
}

func newMockRepo(t *testing.T) (*repository.Repository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return repository.NewRepository(mock, zap.NewNop()), mock
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return serveJSON(t, handler, method, target, body)
}

// serveJSON drives any handler, including chi routers when the route
// carries URL parameters.
func serveJSON(t *testing.T, handler http.Handler, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}
