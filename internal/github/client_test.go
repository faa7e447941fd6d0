package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alimgiray/gitfocus/internal/models"
	gogithub "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileJSON = `{
	"login": "testuser",
	"name": "Test User",
	"avatar_url": "https://avatars.githubusercontent.com/u/1?v=4",
	"bio": "A test user",
	"company": null,
	"location": null,
	"blog": "",
	"twitter_username": null,
	"followers": 42,
	"following": 10,
	"public_repos": 5
}`

const reposJSON = `[
	{
		"name": "popular-lib",
		"full_name": "testuser/popular-lib",
		"fork": false,
		"description": "A popular library",
		"license": null,
		"stargazers_count": 120,
		"pushed_at": "2025-07-01T12:00:00Z",
		"default_branch": "main"
	},
	{
		"name": "side-project",
		"full_name": "testuser/side-project",
		"fork": false,
		"description": null,
		"license": {"spdx_id": "MIT"},
		"stargazers_count": 8,
		"pushed_at": "2026-02-28T12:00:00Z",
		"default_branch": "main"
	},
	{
		"name": "someones-lib",
		"full_name": "testuser/someones-lib",
		"fork": true,
		"license": {"spdx_id": "MIT"},
		"stargazers_count": 3,
		"pushed_at": "2026-02-28T12:00:00Z",
		"default_branch": "main"
	}
]`

const prSearchJSON = `{
	"total_count": 1,
	"items": [
		{
			"title": "Fix critical bug in parser",
			"html_url": "https://github.com/testuser/popular-lib/pull/1",
			"created_at": "2026-01-15T12:00:00Z",
			"repository_url": "https://api.github.com/repos/testuser/popular-lib",
			"state": "open",
			"pull_request": {"url": "https://api.github.com/repos/testuser/popular-lib/pulls/1"}
		}
	]
}`

// newStubClient serves canned GitHub API responses for testuser and 404s
// for everyone else.
func newStubClient(t *testing.T) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/testuser/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposJSON))
	})
	mux.HandleFunc("/users/testuser/events/public", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"type": "PushEvent", "created_at": "2026-02-20T12:00:00Z"}]`))
	})
	mux.HandleFunc("/users/testuser", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(profileJSON))
	})
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Query().Get("q"), "type:pr") {
			w.Write([]byte(prSearchJSON))
			return
		}
		w.Write([]byte(`{"total_count": 0, "items": []}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gh := gogithub.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = baseURL

	return NewClientFromGitHub(gh)
}

func TestGetProfile(t *testing.T) {
	client := newStubClient(t)

	t.Run("Known user is normalized", func(t *testing.T) {
		profile, err := client.GetProfile(context.Background(), "testuser")

		require.NoError(t, err)
		assert.Equal(t, "testuser", profile.Login)
		assert.Equal(t, "Test User", profile.Name)
		require.NotNil(t, profile.Bio)
		assert.Equal(t, "A test user", *profile.Bio)
		assert.Nil(t, profile.Company)
		assert.Equal(t, 42, profile.Followers)
		assert.Equal(t, 5, profile.PublicRepos)
	})

	t.Run("Unknown user maps to ErrUserNotFound", func(t *testing.T) {
		_, err := client.GetProfile(context.Background(), "ghost")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestListRepositories(t *testing.T) {
	client := newStubClient(t)

	repos, err := client.ListRepositories(context.Background(), "testuser")

	require.NoError(t, err)
	require.Len(t, repos, 2, "forks should be excluded")

	assert.Equal(t, "testuser/popular-lib", repos[0].FullName)
	assert.Nil(t, repos[0].License, "absent license stays nil")
	assert.Equal(t, 120, repos[0].Stars)
	require.NotNil(t, repos[0].Description)
	assert.Equal(t, "A popular library", *repos[0].Description)

	assert.Equal(t, "testuser/side-project", repos[1].FullName)
	require.NotNil(t, repos[1].License)
	assert.Equal(t, "MIT", *repos[1].License)
	assert.Nil(t, repos[1].Description)
}

func TestSearchActivity(t *testing.T) {
	client := newStubClient(t)

	t.Run("Pull requests", func(t *testing.T) {
		items, err := client.SearchActivity(context.Background(), "testuser", models.ActivityTypePR)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Fix critical bug in parser", items[0].Title)
		assert.Equal(t, "https://github.com/testuser/popular-lib/pull/1", items[0].URL)
		assert.True(t, items[0].Open)
		assert.Equal(t, models.ActivityTypePR, items[0].Type)
	})

	t.Run("No issues", func(t *testing.T) {
		items, err := client.SearchActivity(context.Background(), "testuser", models.ActivityTypeIssue)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestListRecentEvents(t *testing.T) {
	client := newStubClient(t)

	events, err := client.ListRecentEvents(context.Background(), "testuser")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 2026, events[0].Year())
}
