package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rpupo63/portfolio-site/storage"
)

const maxUploadSize = 32 << 20

// uploadPrefixes names the object key prefix used for each logical bucket.
var uploadPrefixes = map[string]string{
	storage.CaseStudyImages: "case-study",
	storage.ProfileImages:   "profile",
}

// parseAdminForm accepts both multipart and urlencoded submissions.
func parseAdminForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadSize)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// multipartFiles opens the files submitted under field. Empty file inputs are
// skipped. The returned func closes every opened file.
func multipartFiles(r *http.Request, field string) ([]storage.File, func(), error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
	if r.MultipartForm == nil {
		return nil, closeAll, nil
	}

	var files []storage.File
	for _, header := range r.MultipartForm.File[field] {
		if header.Filename == "" && header.Size == 0 {
			continue
		}
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, f)
		files = append(files, storage.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return files, closeAll, nil
}
