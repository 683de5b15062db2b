package mirror

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sheets-downloader/internal/config"
)

func validConfig() config.MirrorConfig {
	return config.MirrorConfig{
		Endpoint:  "localhost:9000",
		Bucket:    "exports",
		AccessKey: "minio",
		SecretKey: "minio123",
	}
}

func TestNewS3Mirror_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.MirrorConfig)
		errMsg string
	}{
		{"missing endpoint", func(c *config.MirrorConfig) { c.Endpoint = " " }, "endpoint"},
		{"missing bucket", func(c *config.MirrorConfig) { c.Bucket = "" }, "bucket"},
		{"missing access key", func(c *config.MirrorConfig) { c.AccessKey = "" }, "access key"},
		{"missing secret key", func(c *config.MirrorConfig) { c.SecretKey = "" }, "secret key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			_, err := NewS3Mirror(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewS3Mirror_Defaults(t *testing.T) {
	m, err := NewS3Mirror(validConfig())
	require.NoError(t, err)
	assert.Equal(t, "exports", m.Bucket())
	assert.Equal(t, DefaultRegion, m.region)
}

func TestObjectKey(t *testing.T) {
	cfg := validConfig()
	m, err := NewS3Mirror(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Orders_Table.csv", m.ObjectKey(filepath.Join("out", "Orders_Table.csv")))

	cfg.Prefix = "/daily/2024/"
	m, err = NewS3Mirror(cfg)
	require.NoError(t, err)
	assert.Equal(t, "daily/2024/Orders_Table.csv", m.ObjectKey(filepath.Join("out", "Orders_Table.csv")))
}

func TestPut_EmptyPath(t *testing.T) {
	m, err := NewS3Mirror(validConfig())
	require.NoError(t, err)
	assert.Error(t, m.Put(context.Background(), ""))
}
