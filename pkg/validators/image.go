package validators

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrNoImage              = errors.New("no image file provided")
	ErrImageTooLarge        = errors.New("image is too large")
	ErrImageTypeUnsupported = errors.New("only jpeg, png, gif and webp images are allowed")
)

var (
	allowedImageExts  = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedImageMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

// ImageValidator checks an uploaded image against the configured size limit
// and the allowed formats. Extension and Content-Type header are checked
// first because they're cheap, then the content is sniffed to catch spoofed
// types.
func ImageValidator(fh *multipart.FileHeader) (int, multipart.File, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, ErrNoImage
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, ErrImageTooLarge
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	if !slices.Contains(allowedImageExts, ext) {
		return http.StatusBadRequest, nil, ErrImageTypeUnsupported
	}

	ct := fh.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "image/") {
		return http.StatusBadRequest, nil, ErrImageTypeUnsupported
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	if !slices.Contains(allowedImageMIMEs, mime.String()) {
		f.Close()
		return http.StatusBadRequest, nil, ErrImageTypeUnsupported
	}

	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	return 0, f, nil
}
