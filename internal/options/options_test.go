package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryOptionHasADescription(t *testing.T) {
	for _, id := range All() {
		spec, ok := Lookup(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, spec.Description, id)
		assert.NotEmpty(t, spec.Icon, id)
		assert.NotEmpty(t, spec.NerdIcon, id)
	}
}

func TestAllMatchesRegistry(t *testing.T) {
	assert.Len(t, All(), len(Registry()))

	seen := map[ID]bool{}
	for _, id := range All() {
		assert.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
}

func TestIsGit(t *testing.T) {
	assert.True(t, IsGit(GitBranch))
	assert.True(t, IsGit(GitDirty))
	assert.True(t, IsGit(GitAheadBehind))
	assert.False(t, IsGit(CwdPath))
	assert.False(t, IsGit(Uptime))
	assert.False(t, IsGit(ID("bogus")))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup(ID("nope"))
	assert.False(t, ok)
}
