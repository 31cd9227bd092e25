package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/config"
)

// ImageStore is the external host that keeps post and profile images. Only
// the hosted URL is persisted in the database; the raw payload never is.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, url string) error
}

// minioAPI is the slice of the minio client the store uses, narrowed so
// tests can substitute a mock.
type minioAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type MinioImageStore struct {
	client    minioAPI
	bucket    string
	publicURL string
}

func NewMinioImageStore(properties config.ImageProperties) (*MinioImageStore, error) {
	client, err := minio.New(properties.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(properties.AccessKey, properties.SecretKey, ""),
		Secure: properties.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create image store client: %w", err)
	}

	publicURL := properties.PublicURL
	if publicURL == "" {
		scheme := "http"
		if properties.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + properties.Endpoint
	}

	return &MinioImageStore{
		client:    client,
		bucket:    properties.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *MinioImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	objectName := primitive.NewObjectID().Hex() + extensionFor(contentType)
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + s.bucket + "/" + objectName, nil
}

func (s *MinioImageStore) Remove(ctx context.Context, url string) error {
	return s.client.RemoveObject(ctx, s.bucket, ObjectName(url), minio.RemoveObjectOptions{})
}

// ObjectName extracts the hosted object name from a stored image URL.
func ObjectName(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
