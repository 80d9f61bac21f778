package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/agenda/internal/logging"
	"github.com/dmitrijs2005/agenda/internal/server/auth"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func generateTestToken(subject string) (string, error) {
	return auth.GenerateToken(subject, []byte("k"), time.Minute)
}
