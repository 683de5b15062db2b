// Package mirror copies exported CSV files to S3-compatible object storage.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ytget/sheets-downloader/internal/config"
)

const (
	// DefaultRegion is used when the config leaves region empty
	DefaultRegion = "us-east-1"

	// ContentTypeCSV is set on every uploaded object
	ContentTypeCSV = "text/csv"
)

// S3Mirror uploads files into one bucket under an optional prefix
type S3Mirror struct {
	client   *minio.Client
	bucket   string
	region   string
	prefix   string
	initOnce sync.Once
	initErr  error
}

// NewS3Mirror validates cfg and creates the storage client. No request is
// made until the first Put.
func NewS3Mirror(cfg config.MirrorConfig) (*S3Mirror, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("mirror endpoint is required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New("mirror bucket is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, errors.New("mirror access key and secret key are required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init mirror client: %w", err)
	}

	return &S3Mirror{
		client: client,
		bucket: bucket,
		region: region,
		prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
	}, nil
}

// Bucket returns the target bucket name
func (m *S3Mirror) Bucket() string {
	return m.bucket
}

func (m *S3Mirror) ensureBucket(ctx context.Context) error {
	m.initOnce.Do(func() {
		exists, err := m.client.BucketExists(ctx, m.bucket)
		if err != nil {
			m.initErr = err
			return
		}
		if exists {
			return
		}
		m.initErr = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.region})
	})
	return m.initErr
}

// Put uploads localPath as {prefix}/{basename}
func (m *S3Mirror) Put(ctx context.Context, localPath string) error {
	if strings.TrimSpace(localPath) == "" {
		return errors.New("path is required")
	}
	if err := m.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}

	key := m.ObjectKey(localPath)
	if _, err := m.client.FPutObject(ctx, m.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: ContentTypeCSV,
	}); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// ObjectKey returns the object name a local file is stored under
func (m *S3Mirror) ObjectKey(localPath string) string {
	name := filepath.Base(localPath)
	if m.prefix == "" {
		return name
	}
	return path.Join(m.prefix, name)
}
