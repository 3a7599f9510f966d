package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIncludeOrderPreserved(t *testing.T) {
	ids, err := Resolve(Request{Include: []string{"uptime", "cwd-path", "git-branch"}})
	require.NoError(t, err)
	assert.Equal(t, []ID{Uptime, CwdPath, GitBranch}, ids)
}

func TestResolveDeduplicates(t *testing.T) {
	ids, err := Resolve(Request{Include: []string{"user", "time", "user"}})
	require.NoError(t, err)
	assert.Equal(t, []ID{User, Time}, ids)
}

func TestResolveExclude(t *testing.T) {
	ids, err := Resolve(Request{
		Include: []string{"user", "time", "platform"},
		Exclude: []string{"time"},
	})
	require.NoError(t, err)
	assert.Equal(t, []ID{User, Platform}, ids)
}

func TestResolveAllIgnoresEverythingElse(t *testing.T) {
	ids, err := Resolve(Request{
		All:      true,
		Include:  []string{"user"},
		Exclude:  []string{"user"},
		Defaults: []string{"time"},
	})
	require.NoError(t, err)
	assert.Equal(t, All(), ids)
}

func TestResolveDefaultsWhenNoInclude(t *testing.T) {
	ids, err := Resolve(Request{Defaults: []string{"time-24", "uptime"}})
	require.NoError(t, err)
	assert.Equal(t, []ID{Time24, Uptime}, ids)
}

func TestResolveIgnoreDefaults(t *testing.T) {
	ids, err := Resolve(Request{
		Defaults:       []string{"time-24"},
		IgnoreDefaults: true,
	})
	require.NoError(t, err)
	assert.Equal(t, All(), ids, "no include and ignored defaults falls back to every option")
}

func TestResolveUnknownDefaultsDropped(t *testing.T) {
	ids, err := Resolve(Request{Defaults: []string{"stale-name", "user"}})
	require.NoError(t, err)
	assert.Equal(t, []ID{User}, ids)
}

func TestResolveInvalidNamesFailBeforeSelection(t *testing.T) {
	_, err := Resolve(Request{Include: []string{"cwd-path", "bogus", "also-bad"}})
	require.Error(t, err)

	var invalid *InvalidOptionsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"bogus", "also-bad"}, invalid.Names)
	assert.Equal(t, "unknown options: bogus and also-bad", err.Error())
}

func TestResolveInvalidExcludeAlsoFails(t *testing.T) {
	_, err := Resolve(Request{
		Include: []string{"user"},
		Exclude: []string{"nope"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestHumanList(t *testing.T) {
	assert.Equal(t, "", HumanList(nil))
	assert.Equal(t, "a", HumanList([]string{"a"}))
	assert.Equal(t, "a and b", HumanList([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", HumanList([]string{"a", "b", "c"}))
}
