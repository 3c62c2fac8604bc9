package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-post-gateway/internal/store"
)

// Init builds the router. Only the /posts and /account groups sit behind the
// token gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)
	router.Use(middleware.StripSlashes)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))

		r.Post("/tokens", h.createToken)
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.register)
			r.Get("/{userID}", h.getUser)
		})
	})

	// routes behind the token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(middleware.Compress(5, "application/json"))

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.listPosts)
			r.Post("/", h.createPost)
			r.Get("/{postID}", h.getPost)
			r.Delete("/{postID}", h.deletePost)
		})
		r.Route("/account", func(r chi.Router) {
			r.Get("/", h.getAccount)
			r.Patch("/", h.updateAccount)
		})
	})

	router.Get(store.ImagesURLPrefix+"*", h.serveImages().ServeHTTP)

	return router
}
