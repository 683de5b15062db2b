package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	loopbackHost     = "127.0.0.1"
	callbackResponse = "Authentication complete. You can close this window."
)

type callbackResult struct {
	code string
	err  error
}

// runLoopbackFlow performs the installed-app authorization code flow: it
// listens on a random local port, sends the user to the consent page and
// exchanges the code the browser delivers back.
func (a *Authenticator) runLoopbackFlow(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(loopbackHost, "0"))
	if err != nil {
		return nil, fmt.Errorf("starting callback listener: %w", err)
	}
	defer listener.Close()

	cfg.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	results := make(chan callbackResult, 1)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var res callbackResult
		switch {
		case q.Get("state") != state:
			res.err = errors.New("state mismatch in OAuth callback")
		case q.Get("error") != "":
			res.err = fmt.Errorf("consent denied: %s", q.Get("error"))
		case q.Get("code") == "":
			res.err = errors.New("OAuth callback without code")
		default:
			res.code = q.Get("code")
		}

		if res.err != nil {
			http.Error(w, res.err.Error(), http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, callbackResponse)
		}

		select {
		case results <- res:
		default:
		}
	})}
	go srv.Serve(listener)
	defer srv.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	a.logger.Info("opening browser for Google consent", "url", authURL)
	if err := a.openBrowser(authURL); err != nil {
		a.logger.Warn("could not open browser, visit the URL manually", "url", authURL, "error", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, a.consentTimeout)
	defer cancel()

	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		tok, err := cfg.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("exchanging authorization code: %w", err)
		}
		return tok, nil
	case <-waitCtx.Done():
		return nil, fmt.Errorf("waiting for consent: %w", waitCtx.Err())
	}
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating state: %w", err)
	}
	return hex.EncodeToString(b), nil
}
