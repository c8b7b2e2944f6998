// pkg/storage/spaces.go
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BlobStore is the subset of object-storage operations the controllers need.
// Backed by DigitalOcean Spaces (S3-compatible) in production.
type BlobStore interface {
	Upload(ctx context.Context, path string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
}

type SpacesStore struct {
	client *s3.Client
	bucket string
	region string
}

// NewSpacesStore builds an S3 client pointed at the regional Spaces endpoint.
func NewSpacesStore(key, secret, region, bucket string) (*SpacesStore, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	return &SpacesStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload stores the object publicly readable and returns its public URL.
func (s *SpacesStore) Upload(ctx context.Context, path string, contentType string, body io.Reader) (string, error) {
	path = strings.TrimPrefix(path, "/")
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &path,
		Body:        body,
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return s.PublicURL(path), nil
}

func (s *SpacesStore) Delete(ctx context.Context, path string) error {
	path = strings.TrimPrefix(path, "/")
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &path,
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

func (s *SpacesStore) PublicURL(path string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, strings.TrimPrefix(path, "/"))
}
