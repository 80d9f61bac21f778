// Package services contains server-side business logic. This file implements
// UserService, which checks credentials against the usuarios table and mints
// access tokens.
package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/server/auth"
	"github.com/dmitrijs2005/agenda/internal/server/config"
	"github.com/dmitrijs2005/agenda/internal/server/models"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/repomanager"
)

// LoginResult carries every row that matched the credentials. AccessToken
// is empty unless exactly one row matched.
type LoginResult struct {
	Rows        []*models.User
	AccessToken string
}

// UserService provides the authentication lookup behind Login.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login returns the rows whose usuario and password digest equal the
// arguments. Zero or several matches are not an error here; deciding what
// they mean is up to the caller.
func (s *UserService) Login(ctx context.Context, username, digest string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)
	rows, err := repo.FindByCredentials(ctx, username, digest)
	if err != nil {
		return nil, common.ErrorInternal
	}

	result := &LoginResult{Rows: rows}
	if len(rows) != 1 {
		return result, nil
	}

	token, err := s.generateAccessToken(rows[0].Username)
	if err != nil {
		return nil, common.ErrorInternal
	}
	result.AccessToken = token

	return result, nil
}

func (s *UserService) generateAccessToken(subject string) (string, error) {
	return auth.GenerateToken(subject, s.jwtSecret, s.accessTokenValidityDuration)
}
