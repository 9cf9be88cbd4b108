package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGzip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/favourites", func(r chi.Router) {
			r.Get("/{kind}", h.listFavourites)
			r.Put("/{kind}", h.addFavourite)
			r.Delete("/{kind}/{id}", h.removeFavourite)
		})

		r.Route("/api/friends", func(r chi.Router) {
			r.Post("/", h.requestFriend)
			r.Get("/", h.listFriends)
			r.Patch("/{login}", h.respondFriend)
			r.Get("/{login}/overlap/{kind}", h.friendOverlap)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
