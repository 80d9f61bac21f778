package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findQuery = `(?s)^SELECT\s+\*\s+FROM\s+usuarios\s+WHERE\s+usuario\s*=\s*\$1\s+AND\s+password\s*=\s*\$2\s*$`

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestFindByCredentials_OneRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "usuario", "password", "email", "nombre", "created_at"}).
		AddRow("u-1", "alice", []byte("digest"), "alice@example.com", nil, created)
	mock.ExpectQuery(findQuery).WithArgs("alice", "digest").WillReturnRows(rows)

	got, err := repo.FindByCredentials(context.Background(), "alice", "digest")
	require.NoError(t, err)
	require.Len(t, got, 1)

	u := got[0]
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, map[string]any{
		"id":         "u-1",
		"usuario":    "alice",
		"password":   "digest",
		"email":      "alice@example.com",
		"nombre":     nil,
		"created_at": "2024-03-01T10:00:00Z",
	}, u.Columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCredentials_NoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(findQuery).WithArgs("ghost", "x").
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario"}))

	got, err := repo.FindByCredentials(context.Background(), "ghost", "x")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindByCredentials_ManyRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "usuario"}).
		AddRow("u-1", "dup").
		AddRow("u-2", "dup")
	mock.ExpectQuery(findQuery).WithArgs("dup", "d").WillReturnRows(rows)

	got, err := repo.FindByCredentials(context.Background(), "dup", "d")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFindByCredentials_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(findQuery).WithArgs("alice", "d").WillReturnError(errors.New("db down"))

	_, err := repo.FindByCredentials(context.Background(), "alice", "d")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByCredentials_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u-1").RowError(0, errors.New("broken row"))
	mock.ExpectQuery(findQuery).WithArgs("a", "b").WillReturnRows(rows)

	_, err := repo.FindByCredentials(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken row")
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, normalize(nil))
	assert.Equal(t, "x", normalize([]byte("x")))
	assert.Equal(t, int64(3), normalize(int64(3)))
	assert.Equal(t, true, normalize(true))
	assert.Equal(t, "[1 2]", normalize([]int{1, 2}))
}
