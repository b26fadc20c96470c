package storage

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/errs"
)

// File is one file picked for upload.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// UploadFailure records a file that could not be uploaded.
type UploadFailure struct {
	FileName string
	Err      error
}

type Uploader struct {
	buckets Buckets
	now     func() time.Time
	logger  zerolog.Logger
}

func NewUploader(buckets Buckets) *Uploader {
	return &Uploader{
		buckets: buckets,
		now:     time.Now,
		logger:  log.With().Str("component", "uploader").Logger(),
	}
}

// UploadAll uploads files one after another, overwriting on key conflict. A
// failed file is recorded and the batch continues; the returned URLs keep the
// input order of the files that succeeded.
func (u *Uploader) UploadAll(ctx context.Context, bucketName, prefix string, files []File) ([]string, []UploadFailure, error) {
	bucket, err := u.buckets.Get(bucketName)
	if err != nil {
		return nil, nil, err
	}

	var urls []string
	var failures []UploadFailure
	for _, f := range files {
		key := ObjectName(prefix, f.Name, u.now())
		if err := bucket.Upload(ctx, key, f.Body, f.ContentType, true); err != nil {
			u.logger.Error().Err(err).Str("file", f.Name).Str("bucket", bucketName).Msg("upload failed")
			failures = append(failures, UploadFailure{FileName: f.Name, Err: errs.NewUploadError(f.Name, err)})
			continue
		}
		urls = append(urls, bucket.PublicURL(key))
	}
	return urls, failures, nil
}
