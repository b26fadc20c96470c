package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUploadFailed  = errors.New("upload failed")
	ErrUnknownBucket = errors.New("unknown storage bucket")
)

func NewUploadError(fileName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Could not upload %s", fileName),
		Cause:      cause,
		Field:      "files",
	}
}

func NewUnknownBucketError(bucket string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownBucket,
		Details:    fmt.Sprintf("Bucket %q is not configured", bucket),
		Field:      "bucket",
	}
}

func IsUploadFailed(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
