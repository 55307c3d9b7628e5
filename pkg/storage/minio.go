package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/shenikar/emergency_management_system/internal/config"
)

// BlobStore stores incident attachments in a single MinIO bucket.
type BlobStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewBlobStore connects to MinIO and makes sure the attachment bucket exists.
func NewBlobStore(ctx context.Context, appCfg *config.Config) (*BlobStore, error) {
	client, err := minio.New(appCfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(appCfg.MinioAccessKey, appCfg.MinioSecretKey, ""),
		Secure: appCfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, appCfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", appCfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, appCfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", appCfg.MinioBucket, err)
		}
	}

	publicURL := appCfg.MinioPublicURL
	if publicURL == "" {
		scheme := "http"
		if appCfg.MinioUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, appCfg.MinioEndpoint)
	}

	return &BlobStore{
		client:    client,
		bucket:    appCfg.MinioBucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores the object and returns its public URL.
func (b *BlobStore) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, b.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	return b.ObjectURL(objectName), nil
}

// Delete removes the object behind a URL previously returned by Upload.
func (b *BlobStore) Delete(ctx context.Context, objectURL string) error {
	objectName, err := b.ObjectNameFromURL(objectURL)
	if err != nil {
		return err
	}
	if err := b.client.RemoveObject(ctx, b.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}
	return nil
}

// HealthCheck lists the bucket to make sure MinIO answers.
func (b *BlobStore) HealthCheck(ctx context.Context) error {
	if _, err := b.client.BucketExists(ctx, b.bucket); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}

func (b *BlobStore) ObjectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", b.publicURL, b.bucket, objectName)
}

// ObjectNameFromURL strips the public prefix and bucket from an attachment URL.
func (b *BlobStore) ObjectNameFromURL(objectURL string) (string, error) {
	return objectNameFromURL(b.bucket, objectURL)
}

func objectNameFromURL(bucket, objectURL string) (string, error) {
	u, err := url.Parse(objectURL)
	if err != nil {
		return "", fmt.Errorf("invalid object url %q: %w", objectURL, err)
	}
	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) || len(u.Path) == len(prefix) {
		return "", fmt.Errorf("object url %q is outside bucket %s", objectURL, bucket)
	}
	return strings.TrimPrefix(u.Path, prefix), nil
}
