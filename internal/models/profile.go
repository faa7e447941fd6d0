package models

// Profile is an immutable snapshot of a GitHub account's public metadata,
// fetched once per analysis run.
type Profile struct {
	Login           string  `json:"login"`
	Name            string  `json:"name"`
	AvatarURL       string  `json:"avatar_url"`
	Bio             *string `json:"bio"`
	Company         *string `json:"company"`
	Location        *string `json:"location"`
	Blog            string  `json:"blog"`
	TwitterUsername *string `json:"twitter_username"`
	Followers       int     `json:"followers"`
	Following       int     `json:"following"`
	PublicRepos     int     `json:"public_repos"`
}
