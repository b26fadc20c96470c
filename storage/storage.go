// Package storage uploads images to S3-compatible object storage and derives
// their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
)

// Logical buckets known to the site.
const (
	CaseStudyImages = "case-study-images"
	ProfileImages   = "profile-images"
)

// Bucket is a single object store bucket.
type Bucket interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, upsert bool) error
	PublicURL(key string) string
}

// Buckets maps logical bucket names to their backing store.
type Buckets map[string]Bucket

func (b Buckets) Get(name string) (Bucket, error) {
	bucket, ok := b[name]
	if !ok || bucket == nil {
		return nil, errs.NewUnknownBucketError(name)
	}
	return bucket, nil
}

// NewBuckets builds the S3 client from configuration and binds the logical
// buckets to their configured S3 bucket names. A logical bucket without a
// configured name is left out.
func NewBuckets(ctx context.Context, c map[string]string) (Buckets, error) {
	client, err := NewS3Client(ctx, c)
	if err != nil {
		return nil, err
	}

	publicURL := config.GetString(c, "STORAGE_PUBLIC_URL", "")
	region := config.GetString(c, "STORAGE_REGION", "us-east-1")
	names := map[string]string{
		CaseStudyImages: config.GetString(c, "STORAGE_BUCKET_CASE_STUDY_IMAGES", ""),
		ProfileImages:   config.GetString(c, "STORAGE_BUCKET_PROFILE_IMAGES", ""),
	}

	buckets := make(Buckets, len(names))
	for logical, name := range names {
		if name == "" {
			continue
		}
		buckets[logical] = NewS3Store(client, name, region, publicURL)
	}
	return buckets, nil
}

// ObjectName derives a collision-resistant key of the form
// <prefix>-<unix millis>-<random>.<ext>. The extension comes from
// originalName and is omitted when it has none.
func ObjectName(prefix, originalName string, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	name := fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), random)
	if ext := strings.TrimPrefix(filepath.Ext(originalName), "."); ext != "" {
		name += "." + strings.ToLower(ext)
	}
	return name
}
