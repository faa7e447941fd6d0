package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alimgiray/gitfocus/internal/analysis"
	"github.com/alimgiray/gitfocus/internal/github"
	"github.com/alimgiray/gitfocus/internal/repositories"
	gogithub "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGitHub serves the canned API responses the pipeline needs and counts
// how many requests reach it, so tests can prove cache short-circuiting.
func stubGitHub(t *testing.T) (*github.Client, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/users/testuser/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"name": "popular-lib",
				"full_name": "testuser/popular-lib",
				"fork": false,
				"description": "A popular library",
				"license": null,
				"stargazers_count": 120,
				"pushed_at": "2025-07-01T12:00:00Z",
				"default_branch": "main"
			}
		]`))
	})
	mux.HandleFunc("/users/testuser/events/public", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/users/testuser", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login": "testuser", "name": "Test User", "bio": "A test user", "blog": "https://example.com", "followers": 42, "public_repos": 1}`))
	})
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Query().Get("q"), "type:pr") {
			w.Write([]byte(`{
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
			}`))
			return
		}
		w.Write([]byte(`{"total_count": 0, "items": []}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})

	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		mux.ServeHTTP(w, r)
	})

	server := httptest.NewServer(counting)
	t.Cleanup(server.Close)

	gh := gogithub.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = baseURL

	return github.NewClientFromGitHub(gh), &requests
}

func newTestAnalysisService(t *testing.T) (*AnalysisService, *SnapshotService, *atomic.Int64) {
	t.Helper()

	db := newTestDB(t)
	snapshotRepo := repositories.NewAnalysisSnapshotRepository(db)
	snapshotService := NewSnapshotService(snapshotRepo, 4*time.Hour)

	client, requests := stubGitHub(t)
	svc := NewAnalysisService(client, analysis.NewEngine(), snapshotService)

	return svc, snapshotService, requests
}

func TestGetAnalysisPipeline(t *testing.T) {
	svc, snapshotService, requests := newTestAnalysisService(t)

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }
	snapshotService.now = func() time.Time { return start }

	outcome, err := svc.GetAnalysis(context.Background(), "testuser")
	require.NoError(t, err)

	t.Run("First run hits the API and is not cached", func(t *testing.T) {
		assert.False(t, outcome.Cached)
		assert.False(t, outcome.Stale)
		assert.Greater(t, requests.Load(), int64(0))
	})

	t.Run("Expected findings are present and ranked", func(t *testing.T) {
		result := outcome.Result
		require.NotEmpty(t, result.Findings)

		for i := 0; i+1 < len(result.Findings); i++ {
			assert.GreaterOrEqual(t, result.Findings[i].Score, result.Findings[i+1].Score)
		}
		assert.Equal(t, 1, result.Findings[0].Rank)
		assert.Equal(t, 1, result.RepoCount)

		titles := make([]string, 0, len(result.Findings))
		for _, f := range result.Findings {
			titles = append(titles, f.Title)
		}
		assert.Contains(t, titles, "Add a license to testuser/popular-lib")
		assert.Contains(t, titles, "Stale PR: Fix critical bug in parser")
	})

	t.Run("Fresh cache hit short-circuits the pipeline", func(t *testing.T) {
		before := requests.Load()

		cached, err := svc.GetAnalysis(context.Background(), "testuser")
		require.NoError(t, err)

		assert.True(t, cached.Cached)
		assert.False(t, cached.Stale)
		assert.Equal(t, before, requests.Load(), "no API requests on a fresh hit")
		assert.Equal(t, outcome.Result.Timestamp, cached.Result.Timestamp)
	})

	t.Run("Stale entry is returned flagged, still without a fetch", func(t *testing.T) {
		snapshotService.now = func() time.Time { return start.Add(5 * time.Hour) }
		before := requests.Load()

		stale, err := svc.GetAnalysis(context.Background(), "testuser")
		require.NoError(t, err)

		assert.True(t, stale.Cached)
		assert.True(t, stale.Stale)
		assert.Equal(t, before, requests.Load())
		assert.Equal(t, outcome.Result.Findings, stale.Result.Findings)
	})

	t.Run("Rescan forces a fresh run with a newer timestamp", func(t *testing.T) {
		later := start.Add(6 * time.Hour)
		svc.now = func() time.Time { return later }
		snapshotService.now = func() time.Time { return later }
		before := requests.Load()

		rescanned, err := svc.Rescan(context.Background(), "testuser")
		require.NoError(t, err)

		assert.False(t, rescanned.Cached)
		assert.Greater(t, requests.Load(), before)
		assert.Greater(t, rescanned.Result.Timestamp, outcome.Result.Timestamp)

		_, state := snapshotService.Get("testuser")
		assert.Equal(t, CacheFresh, state)
	})
}

func TestGetAnalysisUserNotFound(t *testing.T) {
	svc, snapshotService, _ := newTestAnalysisService(t)

	_, err := svc.GetAnalysis(context.Background(), "ghost")

	assert.ErrorIs(t, err, github.ErrUserNotFound)

	// A failed lookup must never populate the cache
	result, state := snapshotService.Get("ghost")
	assert.Equal(t, CacheAbsent, state)
	assert.Nil(t, result)
}
