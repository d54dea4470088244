// Package media uploads user files (photos, resumes, logos) to an
// S3-compatible object store and returns the public URL.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// S3Uploader implements Uploader against an S3 or MinIO endpoint.
type S3Uploader struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// S3Options carries the endpoint configuration for the uploader.
type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// NewS3Uploader builds the S3 client with static credentials and path-style
// addressing, which keeps MinIO and AWS interchangeable.
func NewS3Uploader(ctx context.Context, opts S3Options) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Uploader{client: client, bucket: opts.Bucket, endpoint: opts.Endpoint}, nil
}

// Upload puts the object under a date-sharded random key and returns its URL.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := storageKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.UploadFailed, "File upload failed. Please check your file and try again.", err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.endpoint, "/"), u.bucket, key), nil
}

func storageKey(filename string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("uploads/%d/%d/%d/%s%s", d.Year(), int(d.Month()), d.Day(), uuid.New(), filepath.Ext(filename))
}
