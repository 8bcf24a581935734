package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: host + ":" + port})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRateLimitCeiling(t *testing.T) {
	rdb := testRedis(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Unique route per run so the fixed window never carries over between runs.
	path := fmt.Sprintf("/ping-%d", time.Now().UnixNano())
	r.GET(path, RateLimit(rdb, zap.NewNop(), 3, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 over the ceiling, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRateLimitWindowExpires(t *testing.T) {
	rdb := testRedis(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	path := fmt.Sprintf("/ping-%d", time.Now().UnixNano())
	window := 500 * time.Millisecond
	r.GET(path, RateLimit(rdb, zap.NewNop(), 1, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0})
	})

	do := func() int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("expected 200 inside fresh window, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 over the ceiling, got %d", code)
	}

	time.Sleep(window + 200*time.Millisecond)

	if code := do(); code != http.StatusOK {
		t.Fatalf("expected 200 after the window expired, got %d", code)
	}
}

func TestRateLimitRepairsLostTTL(t *testing.T) {
	rdb := testRedis(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	path := fmt.Sprintf("/ping-%d", time.Now().UnixNano())
	window := 500 * time.Millisecond
	r.GET(path, RateLimit(rdb, zap.NewNop(), 1, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0})
	})

	// Counter key stranded without a TTL, already over the limit. The
	// identity is empty because httptest requests carry no remote address.
	key := fmt.Sprintf("ratelimit:%s:", path)
	if err := rdb.Set(context.Background(), key, 10, 0).Err(); err != nil {
		t.Fatalf("failed to seed counter key: %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 while over the ceiling, got %d", w.Code)
	}

	// The request must have reattached a TTL: once the window passes the
	// key is gone and the route unblocks.
	ttl, err := rdb.TTL(context.Background(), key).Result()
	if err != nil || ttl <= 0 {
		t.Fatalf("expected a positive TTL on the counter key, got %v (err %v)", ttl, err)
	}

	time.Sleep(window + 200*time.Millisecond)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after the repaired window expired, got %d", w.Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	// Client pointed at a port nothing listens on.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer rdb.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(rdb, zap.NewNop(), 1, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected limiter to fail open, got %d", w.Code)
		}
	}
}
