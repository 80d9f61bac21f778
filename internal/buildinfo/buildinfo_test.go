package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	origVersion, origDate, origCommit := buildVersion, buildDate, buildCommit
	t.Cleanup(func() { buildVersion, buildDate, buildCommit = origVersion, origDate, origCommit })

	buildVersion, buildDate, buildCommit = "", "", ""
	var b bytes.Buffer
	PrintBuildData(&b)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", b.String())

	buildVersion, buildDate, buildCommit = "v1.2.0", "2026-10-14", "abc123"
	b.Reset()
	PrintBuildData(&b)
	assert.Equal(t, "Build version: v1.2.0\nBuild date: 2026-10-14\nBuild commit: abc123\n", b.String())
}
