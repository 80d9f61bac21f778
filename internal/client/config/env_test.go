package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AGENDA_SERVER_ADDR", "agenda:7000")
	t.Setenv("AGENDA_REQUEST_TIMEOUT", "2s")
	t.Setenv("AGENDA_PAGE_SIZE", "10")
	t.Setenv("AGENDA_FRESH_EDIT", "true")
	t.Setenv("AGENDA_VERBOSE", "1")
	t.Setenv("AGENDA_OFFLINE", "true")
	t.Setenv("AGENDA_LOG_LEVEL", "info")

	c := &Config{}
	parseEnv(c)

	assert.Empty(t, cmp.Diff(&Config{
		ServerEndpointAddr: "agenda:7000",
		RequestTimeout:     2 * time.Second,
		PageSize:           10,
		FreshEdits:         true,
		Verbose:            true,
		Offline:            true,
		LogLevel:           "info",
	}, c))
}
