package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortSHA(t *testing.T) {
	tests := []struct {
		name string
		full string
		want string
	}{
		{name: "full sha", full: "0123456789abcdef0123456789abcdef01234567", want: "01234567"},
		{name: "exactly eight", full: "deadbeef", want: "deadbeef"},
		{name: "nine", full: "deadbeef1", want: "deadbeef"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShortSHA(tt.full)
			require.NoError(t, err)
			require.Len(t, got, ShortSHALength)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewCommitRejectsShortIdentifier(t *testing.T) {
	_, err := NewCommit("abc", "fix", "alice", "2024-01-01T00:00:00Z")
	require.ErrorIs(t, err, ErrMalformedCommit)
}

func TestParseRepoRef(t *testing.T) {
	for _, raw := range []string{
		"octo/app",
		"github.com/octo/app",
		"https://github.com/octo/app",
		"https://github.com/octo/app.git",
		"https://github.com/octo/app/",
		"https://ghe.corp/octo/app",
		"ghe.corp.example.com/octo/app.git",
		"http://www.ghe.corp/octo/app/",
	} {
		ref, err := ParseRepoRef(raw)
		require.NoError(t, err, raw)
		require.Equal(t, "octo/app", ref.Path(), raw)
	}

	for _, raw := range []string{"", "octo", "https://github.com/octo", "a/b/c", "ghe.corp/octo/app/extra"} {
		_, err := ParseRepoRef(raw)
		require.ErrorIs(t, err, ErrInvalidArgument, raw)
	}
}

func TestReleaseInfoNaming(t *testing.T) {
	info := ReleaseInfo{Version: "2.0.2"}
	require.Equal(t, "v2.0.2", info.TagName())
	require.Equal(t, "Release v2.0.2", info.Title())
}

func TestBranchOrDefault(t *testing.T) {
	require.Equal(t, "dev", ReleaseRequest{Branch: "dev"}.BranchOrDefault("main"))
	require.Equal(t, "trunk", ReleaseRequest{}.BranchOrDefault("trunk"))
	require.Equal(t, DefaultBranch, ReleaseRequest{}.BranchOrDefault(""))
}

func TestTaskLifecycle(t *testing.T) {
	task := NewTask("id-1")

	accepted := task.Accepted()
	require.True(t, accepted.Success)
	require.Nil(t, accepted.Version)
	require.Equal(t, "id-1", *accepted.PipelineID)

	_, ok := task.Result()
	require.False(t, ok)

	task.Finish(Failed("boom", "id-1"))
	task.Finish(Succeeded("late", "9.9.9", "id-1"))

	<-task.Done()
	res, ok := task.Result()
	require.True(t, ok)
	require.False(t, res.Success)
	require.Equal(t, "boom", res.Message)
	require.Nil(t, res.Version)
}
