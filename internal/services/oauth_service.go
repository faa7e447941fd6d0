package services

import (
	"context"
	"fmt"

	"github.com/alimgiray/gitfocus/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// OAuthService performs the server-side half of the GitHub OAuth flow:
// exchanging an authorization code for an access token on behalf of the
// browser UI, which cannot hold the client secret.
type OAuthService struct {
	oauthConfig *oauth2.Config
}

func NewOAuthService() *OAuthService {
	oauthConfig := &oauth2.Config{
		ClientID:     config.AppConfig.GitHub.ClientID,
		ClientSecret: config.AppConfig.GitHub.ClientSecret,
		Endpoint:     github.Endpoint,
	}

	return &OAuthService{
		oauthConfig: oauthConfig,
	}
}

// NewOAuthServiceWithEndpoint builds a service against a custom endpoint.
// Used by tests to point the exchange at a stub server.
func NewOAuthServiceWithEndpoint(clientID, clientSecret string, endpoint oauth2.Endpoint) *OAuthService {
	return &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}
