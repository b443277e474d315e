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

	"github.com/saransh1220/spoty-backend/internal/config"
)

// S3Storage implements FileStorage using AWS S3 or MinIO.
type S3Storage struct {
	client         *s3.Client
	bucketName     string
	publicEndpoint string
	region         string
}

// NewS3Storage creates a new S3 storage implementation
func NewS3Storage(ctx context.Context, cfg config.FileStorageConfig) (*S3Storage, error) {
	if cfg.S3BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.S3Endpoint != "" {
		// MinIO / LocalStack Configuration
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		)
	} else {
		// Standard AWS S3 Configuration
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			endpoint := cfg.S3Endpoint
			if !cfg.S3UseSSL && !hasHTTPPrefix(endpoint) {
				endpoint = "http://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	})

	publicEndpoint := cfg.S3PublicEndpoint
	if publicEndpoint == "" {
		publicEndpoint = cfg.S3Endpoint
	}

	return &S3Storage{
		client:         client,
		bucketName:     cfg.S3BucketName,
		publicEndpoint: publicEndpoint,
		region:         cfg.S3Region,
	}, nil
}

// Upload puts the object and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}
	return s.publicURL(key), nil
}

// Delete removes the object from the bucket.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) publicURL(key string) string {
	if s.publicEndpoint != "" {
		endpoint := s.publicEndpoint
		if !hasHTTPPrefix(endpoint) {
			endpoint = "http://" + endpoint
		}
		return fmt.Sprintf("%s/%s/%s", endpoint, s.bucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}

func hasHTTPPrefix(endpoint string) bool {
	return strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://")
}
