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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getVersion)
	})

	// vault routes, every one scoped to the authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/vault/status", h.vaultStatus)
		r.Post("/api/vault/initialize", h.initializeVault)
		r.Post("/api/vault/unlock", h.unlockVault)
		r.Post("/api/vault/lock", h.lockVault)
		r.Post("/api/vault/restore", h.restoreSession)
		r.Post("/api/vault/change-password", h.changeMasterPassword)

		r.Get("/api/vault/items", h.listItems)
		r.Post("/api/vault/items", h.createItem)
		r.Post("/api/vault/items/refresh", h.refreshItems)
		r.Patch("/api/vault/items/{itemID}", h.updateItem)
		r.Delete("/api/vault/items/{itemID}", h.deleteItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
