package upload

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// S3Config holds configuration for S3-compatible storage
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint for S3-compatible providers (path-style).
	Endpoint string
	// PublicBaseURL is prepended to object keys to build asset URLs.
	PublicBaseURL string
}

// ObjectAPI is the subset of *s3.Client the uploader needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Uploader writes assets straight to a bucket. The object key is the public id.
type S3Uploader struct {
	client  ObjectAPI
	bucket  string
	baseURL string
}

// NewS3Client creates an S3 client, switching to path-style addressing when a
// custom endpoint is configured.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.Endpoint == "" {
		return s3.NewFromConfig(awsCfg), nil
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	}), nil
}

func NewS3Uploader(client ObjectAPI, cfg S3Config) *S3Uploader {
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Uploader{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

func (u *S3Uploader) Upload(ctx context.Context, file *domain.UploadFile, replacePublicID string) (*domain.Asset, error) {
	prepared, err := Prepare(file)
	if err != nil {
		return nil, err
	}

	key := objectKey(prepared)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(prepared.Data),
		ContentType: aws.String(prepared.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object %s: %w", key, err)
	}

	if replacePublicID != "" && replacePublicID != key {
		if _, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(replacePublicID),
		}); err != nil {
			logger.Log.Warn("failed to delete replaced object", "key", replacePublicID, "error", err)
		}
	}

	return &domain.Asset{URL: u.baseURL + "/" + key, PublicID: key}, nil
}

func objectKey(file *domain.UploadFile) string {
	ext := strings.ToLower(path.Ext(file.Filename))
	if file.ContentType == "image/jpeg" {
		ext = ".jpg"
	}
	name := slug.Make(strings.TrimSuffix(path.Base(file.Filename), path.Ext(file.Filename)))
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("uploads/%s-%s%s", uuid.NewString(), name, ext)
}
