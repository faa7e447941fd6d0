// Package github adapts the GitHub REST API into the normalized records
// the analysis engine consumes.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimgiray/gitfocus/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

type Client struct {
	gh *github.Client
}

// NewClient creates a GitHub API client. An empty token is allowed: public
// data is readable unauthenticated, just with lower rate limits.
func NewClient(token string) *Client {
	if token == "" {
		return &Client{gh: github.NewClient(nil)}
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return &Client{gh: github.NewClient(tc)}
}

// NewClientFromGitHub wraps an already constructed go-github client.
// Used by tests to point the adapter at a stub server.
func NewClientFromGitHub(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// GetProfile fetches a user's public profile. A 404 maps to ErrUserNotFound;
// every other failure maps to ErrDataFetch.
func (c *Client) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	user, resp, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrUserNotFound
		}
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: get user %s: %v", ErrDataFetch, username, err)
	}

	return &models.Profile{
		Login:           user.GetLogin(),
		Name:            user.GetName(),
		AvatarURL:       user.GetAvatarURL(),
		Bio:             user.Bio,
		Company:         user.Company,
		Location:        user.Location,
		Blog:            user.GetBlog(),
		TwitterUsername: user.TwitterUsername,
		Followers:       user.GetFollowers(),
		Following:       user.GetFollowing(),
		PublicRepos:     user.GetPublicRepos(),
	}, nil
}

// ListRepositories fetches all of a user's public repositories and
// normalizes them. Forks are excluded; they aren't the user's own work.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]models.RepositorySummary, error) {
	opts := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "pushed",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allRepos []*github.Repository
	for {
		repos, resp, err := c.gh.Repositories.List(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: list repositories for %s: %v", ErrDataFetch, username, err)
		}
		allRepos = append(allRepos, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	summaries := make([]models.RepositorySummary, 0, len(allRepos))
	for _, repo := range allRepos {
		if repo.GetFork() {
			continue
		}
		summaries = append(summaries, normalizeRepository(repo))
	}

	return summaries, nil
}

func normalizeRepository(repo *github.Repository) models.RepositorySummary {
	summary := models.RepositorySummary{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Fork:          repo.GetFork(),
		Description:   repo.Description,
		Stars:         repo.GetStargazersCount(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
	if repo.License != nil {
		spdx := repo.License.GetSPDXID()
		summary.License = &spdx
	}
	if repo.PushedAt != nil {
		summary.PushedAt = repo.PushedAt.Time
	}
	return summary
}

// SearchActivity fetches the user's open pull requests or issues through
// the search API.
func (c *Client) SearchActivity(ctx context.Context, username string, activityType models.ActivityType) ([]models.ActivityItem, error) {
	query := fmt.Sprintf("author:%s type:%s state:open", username, activityType)
	opts := &github.SearchOptions{
		Sort:        "created",
		Order:       "asc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var items []models.ActivityItem
	for {
		result, resp, err := c.gh.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: search %s activity for %s: %v", ErrDataFetch, activityType, username, err)
		}
		for _, issue := range result.Issues {
			items = append(items, models.ActivityItem{
				Title:         issue.GetTitle(),
				URL:           issue.GetHTMLURL(),
				CreatedAt:     issue.GetCreatedAt().Time,
				RepositoryURL: issue.GetRepositoryURL(),
				Open:          issue.GetState() == "open",
				Type:          activityType,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return items, nil
}

// ListRecentEvents fetches the timestamps of the user's recent public
// events. One page is enough; the detectors only care how recent the
// newest event is.
func (c *Client) ListRecentEvents(ctx context.Context, username string) ([]time.Time, error) {
	opts := &github.ListOptions{PerPage: 100}
	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list events for %s: %v", ErrDataFetch, username, err)
	}

	timestamps := make([]time.Time, 0, len(events))
	for _, event := range events {
		if event.CreatedAt != nil {
			timestamps = append(timestamps, event.CreatedAt.Time)
		}
	}
	return timestamps, nil
}
