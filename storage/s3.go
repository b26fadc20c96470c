package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rpupo63/portfolio-site/config"
)

// ObjectPutter is the subset of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client loads the default AWS credential chain. STORAGE_ENDPOINT points
// the client at an S3-compatible store using path-style addressing.
func NewS3Client(ctx context.Context, c map[string]string) (*s3.Client, error) {
	region := config.GetString(c, "STORAGE_REGION", "us-east-1")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := config.GetString(c, "STORAGE_ENDPOINT", "")
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

type S3Store struct {
	client    ObjectPutter
	bucket    string
	region    string
	publicURL string
}

func NewS3Store(client ObjectPutter, bucket, region, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload writes body under key. Without upsert the put is conditional and
// fails when the key already exists.
func (s *S3Store) Upload(ctx context.Context, key string, body io.Reader, contentType string, upsert bool) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if !upsert {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put %s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func (s *S3Store) PublicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
}
