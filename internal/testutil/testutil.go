// Package testutil provides test utilities and helpers.
package testutil

import (
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"inspovault/internal/config"
	"inspovault/internal/models"
	"inspovault/internal/notify"
	"inspovault/internal/server"
	"inspovault/internal/store"
	"inspovault/internal/vault"
)

// SeededService returns a vault service over a store holding the default
// sample records. Notifications live for a minute so tests can inspect them.
func SeededService(t *testing.T) *vault.Service {
	t.Helper()

	s := store.New()
	if err := s.Seed(store.DefaultSeed()); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	center := notify.NewCenter(time.Minute)
	t.Cleanup(center.Close)

	return vault.New(s, center, models.DefaultCalendars)
}

// StartServer serves svc on a random local port and returns its base URL.
// The server is shut down when the test ends.
func StartServer(t *testing.T, svc *vault.Service) string {
	t.Helper()

	srv := server.New(&config.Config{
		BaseURL:      "http://localhost:3000",
		RateLimitMax: 1000,
	})
	srv.RegisterRoutes(svc)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	go func() {
		_ = srv.App.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	t.Cleanup(func() {
		_ = srv.Shutdown()
	})

	return "http://" + ln.Addr().String()
}
