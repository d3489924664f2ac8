package jobs

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/fiber/v3/client"

	"inspovault/internal/metrics"
	"inspovault/internal/store"
	"inspovault/internal/validation"
)

// Link check results
const (
	LinkReachable   = "reachable"
	LinkUnreachable = "unreachable"
	LinkBlocked     = "blocked"
)

// LinkChecker periodically checks that saved inspiration URLs still respond.
// Social posts get deleted; the results show up in metrics and logs.
type LinkChecker struct {
	store    *store.Store
	interval time.Duration
	client   *client.Client

	// pause between two requests
	pause  time.Duration
	lookup func(host string) ([]net.IP, error)
}

// NewLinkChecker creates a new link checker.
func NewLinkChecker(s *store.Store, interval time.Duration) *LinkChecker {
	c := client.New()
	c.SetTimeout(10 * time.Second)
	c.SetUserAgent("InspoVault-LinkChecker/1.0")

	return &LinkChecker{
		store:    s,
		interval: interval,
		client:   c,
		pause:    time.Second,
		lookup:   net.LookupIP,
	}
}

// Start runs a check immediately and then once per interval until ctx is done.
func (lc *LinkChecker) Start(ctx context.Context) {
	slog.Info("link checker started", "interval", lc.interval)

	lc.CheckAll(ctx)

	ticker := time.NewTicker(lc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("link checker stopped")
			return
		case <-ticker.C:
			lc.CheckAll(ctx)
		}
	}
}

// CheckAll checks every saved item and returns the result per item ID.
func (lc *LinkChecker) CheckAll(ctx context.Context) map[string]string {
	items := lc.store.ListItems()
	results := make(map[string]string, len(items))
	if len(items) == 0 {
		return results
	}

	slog.Debug("link checker: checking items", "count", len(items))

	for i, item := range items {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		result, reason := lc.checkURL(ctx, item.URL)
		results[item.ID] = result
		metrics.RecordLinkCheck(result)
		if result != LinkReachable {
			slog.Warn("saved link not reachable", "item_id", item.ID, "url", item.URL, "result", result, "reason", reason)
		}

		if lc.pause > 0 && i < len(items)-1 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(lc.pause):
			}
		}
	}
	return results
}

// checkURL sends a HEAD request. Any HTTP response counts as reachable.
func (lc *LinkChecker) checkURL(ctx context.Context, rawURL string) (string, string) {
	if ok, msg := validation.ValidateURLForProbe(rawURL, lc.lookup); !ok {
		return LinkBlocked, msg
	}

	resp, err := lc.client.Head(rawURL, client.Config{Ctx: ctx})
	if err != nil {
		return LinkUnreachable, "connection failed: " + err.Error()
	}
	resp.Close()
	return LinkReachable, ""
}
