package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site/errs"
)

type mockPutter struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (m *mockPutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

type mockBucket struct {
	keys   []string
	failOn map[string]bool
}

func (m *mockBucket) Upload(_ context.Context, key string, body io.Reader, _ string, _ bool) error {
	data, _ := io.ReadAll(body)
	if m.failOn[string(data)] {
		return errors.New("boom")
	}
	m.keys = append(m.keys, key)
	return nil
}

func (m *mockBucket) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	name := ObjectName("case-study", "Chart.PNG", now)
	assert.Regexp(t, regexp.MustCompile(`^case-study-1700000000123-[0-9a-f]{12}\.png$`), name)

	noExt := ObjectName("profile", "avatar", now)
	assert.Regexp(t, regexp.MustCompile(`^profile-1700000000123-[0-9a-f]{12}$`), noExt)

	assert.NotEqual(t, ObjectName("p", "a.jpg", now), ObjectName("p", "a.jpg", now))
}

func TestS3Store_Upload(t *testing.T) {
	putter := &mockPutter{}
	store := NewS3Store(putter, "images", "us-east-1", "")

	require.NoError(t, store.Upload(context.Background(), "a.png", strings.NewReader("x"), "image/png", false))
	require.NoError(t, store.Upload(context.Background(), "b.png", strings.NewReader("y"), "", true))

	require.Len(t, putter.inputs, 2)
	assert.Equal(t, "images", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, "a.png", aws.ToString(putter.inputs[0].Key))
	assert.Equal(t, "image/png", aws.ToString(putter.inputs[0].ContentType))
	assert.Equal(t, "*", aws.ToString(putter.inputs[0].IfNoneMatch))
	assert.Nil(t, putter.inputs[1].IfNoneMatch)
	assert.Nil(t, putter.inputs[1].ContentType)
}

func TestS3Store_UploadError(t *testing.T) {
	store := NewS3Store(&mockPutter{err: errors.New("denied")}, "images", "us-east-1", "")

	err := store.Upload(context.Background(), "a.png", strings.NewReader("x"), "image/png", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "images/a.png")
}

func TestS3Store_PublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.example.com/images/case-study-1.png",
		NewS3Store(nil, "images", "us-east-1", "https://storage.example.com/").PublicURL("case-study-1.png"))
	assert.Equal(t,
		"https://images.s3.eu-west-1.amazonaws.com/case-study-1.png",
		NewS3Store(nil, "images", "eu-west-1", "").PublicURL("case-study-1.png"))
}

func TestUploader_UploadAllContinuesPastFailures(t *testing.T) {
	bucket := &mockBucket{failOn: map[string]bool{"second": true}}
	uploader := NewUploader(Buckets{CaseStudyImages: bucket})

	files := []File{
		{Name: "first.png", Body: bytes.NewBufferString("first")},
		{Name: "second.png", Body: bytes.NewBufferString("second")},
		{Name: "third.jpg", Body: bytes.NewBufferString("third")},
	}

	urls, failures, err := uploader.UploadAll(context.Background(), CaseStudyImages, "case-study", files)
	require.NoError(t, err)

	require.Len(t, urls, 2)
	assert.True(t, strings.HasSuffix(urls[0], ".png"))
	assert.True(t, strings.HasSuffix(urls[1], ".jpg"))

	require.Len(t, failures, 1)
	assert.Equal(t, "second.png", failures[0].FileName)
	assert.True(t, errs.IsUploadFailed(failures[0].Err))
}

func TestUploader_UnknownBucket(t *testing.T) {
	uploader := NewUploader(Buckets{})

	_, _, err := uploader.UploadAll(context.Background(), "nope", "x", []File{{Name: "a.png", Body: strings.NewReader("a")}})
	require.Error(t, err)
	assert.Equal(t, 400, errs.StatusOf(err))
}
