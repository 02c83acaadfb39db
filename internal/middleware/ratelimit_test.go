package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newLimitedHandler(t *testing.T, limit int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	config := RateLimitConfig{
		RequestsPerWindow: limit,
		Window:            time.Minute,
		KeyPrefix:         "test_rate_limit",
	}

	handler := RateLimitMiddleware(redisClient, config, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
	return handler, mr
}

// Property: exactly the first limit requests of a window pass
func TestProperty_RateLimitingBlocksExcessiveRequests(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("excessive requests are blocked with 429", prop.ForAll(
		func(requestsPerWindow int, excessRequests int) bool {
			handler, _ := newLimitedHandler(t, requestsPerWindow)

			successCount, blockedCount := 0, 0
			for i := 0; i < requestsPerWindow+excessRequests; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/sessions/abc/navigate", nil)
				req.Header.Set(SessionHeader, "abc")
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					blockedCount++
				}
			}

			return successCount == requestsPerWindow && blockedCount == excessRequests
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRateLimitIsPerSession(t *testing.T) {
	handler, _ := newLimitedHandler(t, 1)

	for _, sid := range []string{"tab-1", "tab-2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sid, nil)
		req.Header.Set(SessionHeader, sid)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("session %s: expected 200, got %d", sid, w.Code)
		}
		if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
			t.Errorf("session %s: expected remaining 0, got %q", sid, got)
		}
	}
}

func TestRateLimitSetsRetryAfterWhenBlocked(t *testing.T) {
	handler, _ := newLimitedHandler(t, 1)

	var w *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/catalog/products", nil)
		req.RemoteAddr = "192.168.1.100:5000"
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimitFailsOpenWhenRedisIsDown(t *testing.T) {
	handler, mr := newLimitedHandler(t, 1)
	mr.Close()

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/products", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with redis down, got %d", i, w.Code)
		}
	}
}
