package http

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-post-gateway/internal/store"
)

// imagesFileSystem hides directories so the file server never renders a
// listing.
type imagesFileSystem struct {
	http.FileSystem
}

func (fsys imagesFileSystem) Open(name string) (http.File, error) {
	f, err := fsys.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}

// serveImages serves the flat images directory under [store.ImagesURLPrefix].
func (h *Handler) serveImages() http.Handler {
	fileServer := http.StripPrefix(store.ImagesURLPrefix, http.FileServer(imagesFileSystem{http.Dir(h.imagesDir)}))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, store.ImagesURLPrefix)
		if name == "" || strings.Contains(name, "/") {
			notFound(w, r)
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
