// Package auth obtains an authorized HTTP client for the Drive and Sheets
// APIs. Credentials come from a client-secret file; tokens are cached in a
// token file and refreshed, or re-acquired through the browser when the
// refresh fails.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ytget/sheets-downloader/internal/logging"
	"github.com/ytget/sheets-downloader/internal/platform"
)

// Read-only scopes for folder listing, tab metadata and CSV export
var Scopes = []string{
	"https://www.googleapis.com/auth/drive.readonly",
	"https://www.googleapis.com/auth/spreadsheets.readonly",
}

// DefaultConsentTimeout bounds how long the browser flow waits for the user
const DefaultConsentTimeout = 5 * time.Minute

// Authenticator builds authorized clients from credential files
type Authenticator struct {
	credentialsFile string
	tokenFile       string
	scopes          []string
	consentTimeout  time.Duration
	openBrowser     func(url string) error
	logger          logging.Logger
}

// Option customizes an Authenticator
type Option func(*Authenticator)

// WithBrowserOpener replaces the function used to open the consent page
func WithBrowserOpener(open func(url string) error) Option {
	return func(a *Authenticator) { a.openBrowser = open }
}

// WithLogger sets the process logger
func WithLogger(l logging.Logger) Option {
	return func(a *Authenticator) { a.logger = l }
}

// WithConsentTimeout sets how long to wait for the browser callback
func WithConsentTimeout(d time.Duration) Option {
	return func(a *Authenticator) { a.consentTimeout = d }
}

// NewAuthenticator creates an authenticator for the given files
func NewAuthenticator(credentialsFile, tokenFile string, opts ...Option) *Authenticator {
	a := &Authenticator{
		credentialsFile: credentialsFile,
		tokenFile:       tokenFile,
		scopes:          Scopes,
		consentTimeout:  DefaultConsentTimeout,
		openBrowser:     platform.OpenURL,
		logger:          logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Client returns an HTTP client carrying a valid token. All failures are
// returned as *AuthError.
func (a *Authenticator) Client(ctx context.Context) (*http.Client, error) {
	cfg, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}

	tok, err := a.validToken(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := saveToken(a.tokenFile, tok); err != nil {
		// Not fatal: the session works, only the next start re-prompts.
		a.logger.Warn("failed to cache token", "path", a.tokenFile, "error", err)
	}

	return oauth2.NewClient(ctx, cfg.TokenSource(ctx, tok)), nil
}

func (a *Authenticator) oauthConfig() (*oauth2.Config, error) {
	data, err := os.ReadFile(a.credentialsFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &AuthError{Op: "load credentials", Err: fmt.Errorf("%w: %s", ErrCredentialsNotFound, a.credentialsFile)}
		}
		return nil, &AuthError{Op: "load credentials", Err: err}
	}

	cfg, err := google.ConfigFromJSON(data, a.scopes...)
	if err != nil {
		return nil, &AuthError{Op: "parse credentials", Err: err}
	}
	return cfg, nil
}

// validToken returns the cached token, refreshing it when expired. A token
// that cannot be loaded or refreshed is discarded and the browser flow runs.
func (a *Authenticator) validToken(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	cached, err := loadToken(a.tokenFile)
	if err != nil {
		a.logger.Warn("discarding unreadable token file", "path", a.tokenFile, "error", err)
		cached = nil
	}

	if cached != nil {
		if cached.Valid() {
			return cached, nil
		}
		if cached.RefreshToken != "" {
			tok, err := cfg.TokenSource(ctx, cached).Token()
			if err == nil {
				a.logger.Debug("refreshed cached token")
				return tok, nil
			}
			a.logger.Warn("token refresh failed, re-authorizing", "error", err)
		}
		if err := os.Remove(a.tokenFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			a.logger.Warn("failed to remove stale token file", "path", a.tokenFile, "error", err)
		}
	}

	tok, err := a.runLoopbackFlow(ctx, cfg)
	if err != nil {
		return nil, &AuthError{Op: "authorize", Err: err}
	}
	return tok, nil
}
