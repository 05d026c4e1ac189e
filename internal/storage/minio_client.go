package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/teamMongle/Mongle-Server/internal/config"
)

type Storage interface {
	Put(ctx context.Context, objectName, contentType string, file io.Reader, size int64) error
	Get(ctx context.Context, objectName string) (io.ReadCloser, string, error)
	Remove(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	m := &MinIOClient{client: client, bucket: cfg.MinIO.BucketName}

	exists, err := client.BucketExists(context.Background(), m.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		err = client.MakeBucket(context.Background(), m.bucket, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return m, nil
}

func (m *MinIOClient) Put(ctx context.Context, objectName, contentType string, file io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return nil
}

// Get returns a reader over the stored object along with its content type.
// The caller owns closing the reader.
func (m *MinIOClient) Get(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	object, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from MinIO: %w", err)
	}

	// GetObject is lazy; Stat surfaces a missing object.
	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, "", fmt.Errorf("failed to stat object: %w", err)
	}

	return object, info.ContentType, nil
}

func (m *MinIOClient) Remove(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object from MinIO: %w", err)
	}

	return nil
}
