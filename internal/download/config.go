package download

import (
	"fmt"
	"log/slog"

	"github.com/ytget/sheets-downloader/internal/auth"
	"github.com/ytget/sheets-downloader/internal/config"
	"github.com/ytget/sheets-downloader/internal/drive"
	"github.com/ytget/sheets-downloader/internal/mirror"
)

// NewAuthenticator builds the authenticator described by cfg
func NewAuthenticator(cfg *config.AppConfig) *auth.Authenticator {
	return auth.NewAuthenticator(cfg.CredentialsFile, cfg.TokenFile, auth.WithLogger(slog.Default()))
}

// FromConfig wires a Service for the Google APIs: credentials and token
// files, target tabs and the optional mirror all come from cfg.
func FromConfig(cfg *config.AppConfig) (*Service, error) {
	opts := []Option{WithTargetTabs(cfg.TargetTabs)}

	if cfg.Mirror.Enabled() {
		m, err := mirror.NewS3Mirror(cfg.Mirror)
		if err != nil {
			return nil, fmt.Errorf("configuring mirror: %w", err)
		}
		slog.Info("mirror enabled", "endpoint", cfg.Mirror.Endpoint, "bucket", m.Bucket())
		opts = append(opts, WithMirror(m))
	}

	return NewService(GoogleConnector(NewAuthenticator(cfg), clientOptions(cfg)...), opts...), nil
}

func clientOptions(cfg *config.AppConfig) []drive.ClientOption {
	var opts []drive.ClientOption
	if cfg.PageSize > 0 {
		opts = append(opts, drive.WithPageSize(cfg.PageSize))
	}
	return opts
}
