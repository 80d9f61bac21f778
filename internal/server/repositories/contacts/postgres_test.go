package contacts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	listAscRe  = `(?s)^SELECT\s+id,\s*nombre,.*FROM\s+contactos\s+ORDER\s+BY\s+nombre\s+ASC,\s*id\s+ASC\s*$`
	listDescRe = `(?s)^SELECT\s+id,\s*nombre,.*FROM\s+contactos\s+ORDER\s+BY\s+nombre\s+DESC,\s*id\s+ASC\s*$`
	getRe      = `(?s)^SELECT\s+id,\s*nombre,.*FROM\s+contactos\s+WHERE\s+id\s*=\s*\$1\s*$`
	insertRe   = `(?s)^INSERT\s+INTO\s+contactos\s*\(nombre,\s*telefono,\s*email\)\s*VALUES\s*\(\$1,\s*NULLIF\(\$2,\s*''\),\s*NULLIF\(\$3,\s*''\)\)\s*RETURNING\s+id\s*$`
	updateRe   = `(?s)^UPDATE\s+contactos\s+SET\s+nombre\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s*$`
	deleteRe   = `(?s)^DELETE\s+FROM\s+contactos\s+WHERE\s+id\s*=\s*\$1\s*$`
)

var contactCols = []string{"id", "nombre", "telefono", "email"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_Ascending(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(contactCols).
		AddRow("1", "Ana", "555", "").
		AddRow("2", "Bruno", "", "b@x.io")
	mock.ExpectQuery(listAscRe).WillReturnRows(rows)

	got, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []*models.Contact{
		{ID: "1", Name: "Ana", Phone: "555"},
		{ID: "2", Name: "Bruno", Email: "b@x.io"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DescendingEmpty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listDescRe).WillReturnRows(sqlmock.NewRows(contactCols))

	got, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listAscRe).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), true)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getRe).WithArgs("1").
		WillReturnRows(sqlmock.NewRows(contactCols).AddRow("1", "Ana", "555", "a@x.io"))

	got, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, &models.Contact{ID: "1", Name: "Ana", Phone: "555", Email: "a@x.io"}, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getRe).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_InvalidUUID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getRe).WithArgs("abc").
		WillReturnError(&pgconn.PgError{Code: invalidTextRepresentation})

	_, err := repo.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertRe).WithArgs("Ana", "555", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

	got, err := repo.Create(context.Background(), &models.Contact{Name: "Ana", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
	assert.Equal(t, "Ana", got.Name)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertRe).WithArgs("Ana", "", "").WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), &models.Contact{Name: "Ana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateRe).WithArgs("1", "Ana", "555", "a@x.io").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &models.Contact{ID: "1", Name: "Ana", Phone: "555", Email: "a@x.io"}
	got, err := repo.Update(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestUpdate_Missing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateRe).WithArgs("9", "Ana", "", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Contact{ID: "9", Name: "Ana"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteRe).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "1"))
}

func TestDelete_MissingIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteRe).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteRe).WithArgs("bad").
		WillReturnError(&pgconn.PgError{Code: invalidTextRepresentation})

	require.NoError(t, repo.Delete(context.Background(), "1"))
	require.NoError(t, repo.Delete(context.Background(), "bad"))
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteRe).WithArgs("1").WillReturnError(errors.New("conn reset"))

	err := repo.Delete(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conn reset")
}
