package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/media"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func sampleTime() time.Time {
	return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
}

func newApp(t *testing.T) (*App, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zap.NewNop()
	repo := repository.NewRepository(mock, logger)

	// Relative upload dir, same shape the route mount expects in production
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	store, err := media.NewStore(utils.UploadConfig{Dir: "uploads/works", MaxSizeMB: 1}, logger)
	require.NoError(t, err)

	config := &utils.Config{
		App: utils.AppConfig{PublicDir: t.TempDir()},
	}

	return Wiring(repo, store, config, logger), mock
}

func do(t *testing.T, app *App, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var resp envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec, resp
}

func TestHealth(t *testing.T) {
	app, _ := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

// Full client journey across the wired router: register, log in, book a
// service, see the booking in the client's own list.
func TestClientBookingFlow(t *testing.T) {
	app, mock := newApp(t)

	password := "secret"
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	// Register
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("A", "a@x.com", pgxmock.AnyArg(), entity.RoleClient, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	rec, resp := do(t, app, http.MethodPost, "/api/register", map[string]string{
		"full_name": "A",
		"email":     "a@x.com",
		"password":  password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Registration successful", resp.Message)

	// Login
	mock.ExpectQuery("SELECT id, full_name, email, password, role, created_at").
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "password", "role", "created_at"}).
			AddRow(int64(1), "A", "a@x.com", hash, entity.RoleClient, sampleTime()))

	rec, resp = do(t, app, http.MethodPost, "/api/login", map[string]string{
		"email":    "a@x.com",
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	require.Equal(t, int64(1), user.ID)

	// Book a service
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(1), int64(2), "2025-06-15", entity.BookingStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	rec, resp = do(t, app, http.MethodPost, "/api/bookings", map[string]any{
		"client_id":    user.ID,
		"service_id":   2,
		"booking_date": "2025-06-15",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking created successfully", resp.Message)

	// The booking shows up in the client's list
	mock.ExpectQuery("WHERE b.client_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "service_name", "booking_date", "status"}).
			AddRow(int64(10), "Wedding", sampleTime(), entity.BookingStatusPending))

	rec, resp = do(t, app, http.MethodGet, "/api/bookings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].ID)
	assert.Equal(t, "PENDING", rows[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
