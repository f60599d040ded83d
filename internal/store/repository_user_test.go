// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return &DB{
		DB:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger:  l,
	}, mock, db
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	testDB, mock, db := newTestDB(t)
	repo := &userRepository{db: testDB, logger: logger.Nop()}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		FullName:     "John Smith",
		Username:     "john",
		PasswordHash: "bcrypt-hash",
		Role:         models.RoleUser,
		Status:       models.StatusPending,
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.FullName, user.Username, user.PasswordHash, string(user.Role), string(user.Status)).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john", created.Username)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Username: "john"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "john"})
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "fullname", "username", "password_hash", "role", "status", "created_at"}).
		AddRow(1, "John Smith", "john", "hash", "user", "active", now)

	mock.ExpectQuery("SELECT id, fullname, username").
		WithArgs("john").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, "john", found.Username)
	assert.Equal(t, models.StatusActive, found.Status)
	assert.Equal(t, models.RoleUser, found.Role)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, fullname, username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "fullname", "username", "password_hash", "role", "status", "created_at"}).
		AddRow(7, "Jane Roe", "jane", "hash", "admin", "active", now)

	mock.ExpectQuery("SELECT id, fullname, username").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.ID)
	assert.True(t, found.IsAdmin())
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "fullname", "username", "password_hash", "role", "status", "created_at"}).
		AddRow(1, "John Smith", "john", "hash", "user", "pending", now).
		AddRow(2, "Jane Roe", "jane", "hash", "admin", "active", now)

	mock.ExpectQuery("SELECT id, fullname, username").
		WillReturnRows(rows)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "john", users[0].Username)
	assert.Equal(t, "jane", users[1].Username)
}

func TestUpdateStatus_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs("active", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(ctx, 1, models.StatusActive)
	require.NoError(t, err)
}

func TestUpdateStatus_UserMissing(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs("active", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(ctx, 99, models.StatusActive)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateRole_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs("admin", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRole(ctx, 2, models.RoleAdmin)
	require.NoError(t, err)
}

func TestCountUsers(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
