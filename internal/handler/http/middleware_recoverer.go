package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-post-gateway/internal/logger"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
)

// recoverer turns a panic in any downstream handler into a 500 with the
// generic server error body. http.ErrAbortHandler is re-raised so the server
// can abort the connection as usual.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("uri", r.URL.Path).
				Msg("recovered from panic")

			if !rw.hasWritten() {
				utils.WriteMessage(rw, serverErrorMessage, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(rw, r)
	})
}

// notFound answers unknown routes and unsupported methods alike.
func notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Str("uri", r.URL.Path).Msg("no route")
	utils.WriteMessage(w, serverErrorMessage, http.StatusNotFound)
}
