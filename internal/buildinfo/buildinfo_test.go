package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndString(t *testing.T) {
	t.Cleanup(func() { Set("dev", "none", "unknown") })

	Set("1.2.3", "abc1234", "2024-03-05")
	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "abc1234", Commit())
	assert.Equal(t, "2024-03-05", Date())
	assert.Equal(t, "1.2.3 (commit abc1234, built 2024-03-05)", String())
}

func TestEnrichKeepsExplicitCommit(t *testing.T) {
	t.Cleanup(func() { Set("dev", "none", "unknown") })

	Set("1.0.0", "deadbeef", "today")
	Enrich()
	assert.Equal(t, "deadbeef", Commit())
}
