package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inspovault/internal/handlers/api"
	"inspovault/internal/vault"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc *vault.Service) {
	// Initialize handlers
	healthHandler := api.NewHealthHandler(svc)
	itemHandler := api.NewItemHandler(svc)
	collectionHandler := api.NewCollectionHandler(svc)
	sharedHandler := api.NewSharedHandler(svc)
	notificationHandler := api.NewNotificationHandler(svc.Notifications())

	s.App.Get("/health", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := s.App.Group("/api/v1")

	v1.Get("/calendars", healthHandler.Calendars)

	// Vault
	v1.Get("/items", itemHandler.List)
	v1.Post("/items", itemHandler.Create)
	v1.Get("/items/:id", itemHandler.Get)
	v1.Post("/items/:id/toggle-used", itemHandler.ToggleUsed)
	v1.Post("/items/:id/share", itemHandler.Share)

	// Collections
	v1.Get("/collections", collectionHandler.List)
	v1.Post("/collections", collectionHandler.Create)
	v1.Post("/collections/:id/share", collectionHandler.Share)
	v1.Post("/collections/:id/items", collectionHandler.AddItem)

	// Team collaboration
	v1.Get("/shared", sharedHandler.List)
	v1.Put("/shared/:id/permission", sharedHandler.UpdatePermission)
	v1.Post("/shared/:id/copy-link", sharedHandler.CopyLink)
	v1.Post("/shared/:id/comments", sharedHandler.OpenComments)

	// Notifications
	v1.Get("/notifications", notificationHandler.List)
	v1.Post("/notifications", notificationHandler.Create)
	v1.Delete("/notifications/:id", notificationHandler.Dismiss)
}
