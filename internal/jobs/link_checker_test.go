package jobs

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspovault/internal/models"
	"inspovault/internal/store"
)

func fakeLookup(hosts map[string]string) func(string) ([]net.IP, error) {
	return func(host string) ([]net.IP, error) {
		ip, ok := hosts[host]
		if !ok {
			return nil, errors.New("no such host")
		}
		return []net.IP{net.ParseIP(ip)}, nil
	}
}

func TestLinkChecker_CheckAll(t *testing.T) {
	live := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer live.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadURL := "http://" + ln.Addr().String() + "/gone"
	require.NoError(t, ln.Close())

	s := store.New()
	for _, item := range []models.InspoItem{
		{ID: "live", URL: live.URL + "/video/1"},
		{ID: "dead", URL: deadURL},
		{ID: "private", URL: "http://intranet.local/post"},
		{ID: "unresolvable", URL: "https://nowhere.invalid/post"},
	} {
		require.NoError(t, s.CreateItem(&item))
	}

	checker := NewLinkChecker(s, time.Hour)
	checker.pause = 0
	checker.lookup = fakeLookup(map[string]string{
		"127.0.0.1":      "93.184.216.34",
		"intranet.local": "10.0.0.7",
	})

	results := checker.CheckAll(context.Background())
	assert.Equal(t, map[string]string{
		"live":         LinkReachable,
		"dead":         LinkUnreachable,
		"private":      LinkBlocked,
		"unresolvable": LinkBlocked,
	}, results)
}

func TestLinkChecker_EmptyStore(t *testing.T) {
	checker := NewLinkChecker(store.New(), time.Hour)
	assert.Empty(t, checker.CheckAll(context.Background()))
}

func TestLinkChecker_StopsOnCancel(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Seed(store.DefaultSeed()))

	checker := NewLinkChecker(s, time.Hour)
	checker.lookup = fakeLookup(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, checker.CheckAll(ctx))

	done := make(chan struct{})
	go func() {
		checker.Start(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancellation")
	}
}
