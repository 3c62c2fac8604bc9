package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-post-gateway/models"
)

// imageField is the multipart field uploads are read from.
const imageField = "image"

// bindRequest decodes the body of r into dst and returns the uploaded image,
// if any.
//
// JSON, urlencoded and multipart bodies are accepted. Form values are matched
// against the json tags of dst, so one payload type serves all three. The
// body is limited to the configured upload size.
func (h *Handler) bindRequest(w http.ResponseWriter, r *http.Request, dst any) (*models.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	mediaType := "application/json"
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		var err error
		if mediaType, _, err = mime.ParseMediaType(contentType); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
		}
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return nil, bodyError(err)
		}
		return nil, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(err)
		}
		return nil, bindForm(r.PostForm, dst)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			return nil, bodyError(err)
		}
		if err := bindForm(r.MultipartForm.Value, dst); err != nil {
			return nil, err
		}

		files := r.MultipartForm.File[imageField]
		if len(files) == 0 {
			return nil, nil
		}
		return &models.Upload{FieldName: imageField, Header: files[0]}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// bindForm copies the first value of every form field into dst through its
// json tags.
func bindForm(values url.Values, dst any) error {
	fields := make(map[string]string, len(values))
	for name, v := range values {
		if len(v) > 0 {
			fields[name] = v[0]
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return nil
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}
