package github

import "errors"

var (
	// ErrUserNotFound means the profile lookup returned 404. Terminal and
	// user-visible; never cached.
	ErrUserNotFound = errors.New("github user not found")

	// ErrDataFetch covers network and rate-limit failures from the GitHub
	// API, surfaced distinctly from not-found so callers can suggest a retry.
	ErrDataFetch = errors.New("github data fetch failed")
)
