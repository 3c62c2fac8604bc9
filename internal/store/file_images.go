package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-post-gateway/internal/config"
	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/models"
)

// ImagesURLPrefix is the URL path stored images are served under.
const ImagesURLPrefix = "/images/"

// sniffLen is the amount of content http.DetectContentType looks at.
const sniffLen = 512

var fieldNameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// imageFileStorage stores uploaded images as flat files in one directory.
type imageFileStorage struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

// NewImageFileStorage creates the images directory if needed and returns an
// [ImageStorage] writing into it.
func NewImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageFileStorage").Msg("error creating images directory")
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.ImagesDir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    cfg.ImagesDir,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *imageFileStorage) Dir() string {
	return s.dir
}

// SaveImage writes the upload as "<field>-<unix millis><ext>". When that name
// is taken a uuid is appended. Content that does not sniff as image/* is
// rejected with [ErrNotAnImage] and nothing is written.
func (s *imageFileStorage) SaveImage(ctx context.Context, upload models.Upload) (string, error) {
	log := logger.FromContext(ctx)

	if upload.Header == nil {
		return "", ErrNotAnImage
	}

	src, err := upload.Header.Open()
	if err != nil {
		return "", fmt.Errorf("error opening upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if n == 0 || !strings.HasPrefix(contentType, "image/") {
		log.Debug().Str("content_type", contentType).Msg("rejected upload")
		return "", ErrNotAnImage
	}

	base := fmt.Sprintf("%s-%d", fieldName(upload.FieldName), s.now().UnixMilli())
	ext := imageExtension(upload.Header.Filename, contentType)

	dst, name, err := s.create(base, ext)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error creating image file")
		return "", err
	}

	_, err = io.Copy(dst, io.MultiReader(bytes.NewReader(head), src))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(s.dir, name))
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error writing image file")
		return "", fmt.Errorf("error writing image: %w", err)
	}

	return ImagesURLPrefix + name, nil
}

func (s *imageFileStorage) create(base, ext string) (*os.File, string, error) {
	name := base + ext
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		name = base + "-" + uuid.NewString() + ext
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error creating image file: %w", err)
	}

	return f, name, nil
}

// DeleteImage removes the file behind publicPath. Paths outside
// [ImagesURLPrefix] and missing files yield [ErrImageNotFound].
func (s *imageFileStorage) DeleteImage(ctx context.Context, publicPath string) error {
	name, ok := strings.CutPrefix(publicPath, ImagesURLPrefix)
	if !ok || name == "" || name != path.Base(name) || name == ".." {
		return ErrImageNotFound
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageFileStorage.DeleteImage").Msg("error removing image")
		return fmt.Errorf("error removing image: %w", err)
	}

	return nil
}

func fieldName(field string) string {
	if name := fieldNameSanitizer.ReplaceAllString(field, ""); name != "" {
		return name
	}
	return "image"
}

// imageExtension keeps the extension of the client file name, or derives one
// from the sniffed content type.
func imageExtension(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext != "" && !fieldNameSanitizer.MatchString(strings.TrimPrefix(ext, ".")) {
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
