package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/agenda/internal/dbx"
	"github.com/dmitrijs2005/agenda/internal/server/config"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	migrateErr error
	migrated   bool
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrated = true
	return m.migrateErr
}

func (m *fakeManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *fakeManager) Contacts(db dbx.DBTX) contacts.Repository {
	return contacts.NewPostgresRepository(db)
}

func stubDeps(t *testing.T, fm *fakeManager) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	origOpen, origRM := openDB, newRepositoryManager
	t.Cleanup(func() { openDB, newRepositoryManager = origOpen, origRM })

	openDB = func(string) (*sql.DB, error) { return db, nil }
	newRepositoryManager = func() repomanager.RepositoryManager { return fm }

	return mock
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestNewApp_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("bad dsn") }

	_, err := NewApp(testConfig())
	assert.ErrorContains(t, err, "bad dsn")
}

func TestRun_MigrationErrorStops(t *testing.T) {
	fm := &fakeManager{migrateErr: errors.New("boom")}
	mock := stubDeps(t, fm)
	mock.ExpectPing()
	mock.ExpectClose()

	app, err := NewApp(testConfig())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorContains(t, err, "migration error: boom")
	assert.True(t, fm.migrated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_PingErrorStops(t *testing.T) {
	fm := &fakeManager{}
	mock := stubDeps(t, fm)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	app, err := NewApp(testConfig())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorContains(t, err, "refused")
	assert.False(t, fm.migrated)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	fm := &fakeManager{}
	mock := stubDeps(t, fm)
	mock.ExpectPing()
	mock.ExpectClose()

	app, err := NewApp(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.True(t, fm.migrated)
}

func TestRun_ListenErrorIsReturned(t *testing.T) {
	fm := &fakeManager{}
	mock := stubDeps(t, fm)
	mock.ExpectPing()
	mock.ExpectClose()

	cfg := testConfig()
	cfg.EndpointAddrGRPC = "256.256.256.256:-1"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorContains(t, err, "grpc server error")
}
