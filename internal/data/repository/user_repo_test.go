package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	user := &entity.User{
		Base:         entity.Base{CreatedAt: time.Now()},
		FullName:     "Monny Brand",
		Email:        "monny@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleClient,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.FullName, user.Email, user.PasswordHash, user.Role, user.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err = repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	user := &entity.User{
		FullName:     "Monny Brand",
		Email:        "taken@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleClient,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.FullName, user.Email, user.PasswordHash, user.Role, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err = repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, password, role, created_at")).
		WithArgs("monny@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "password", "role", "created_at"}).
			AddRow(int64(7), "Monny Brand", "monny@example.com", "$2a$10$hash", entity.RoleClient, created))

	user, err := repo.FindByEmail(context.Background(), "monny@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Monny Brand", user.FullName)
	assert.Equal(t, entity.RoleClient, user.Role)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, password, role, created_at")).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "password", "role", "created_at"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
