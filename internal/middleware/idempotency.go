package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
)

// IdempotencyKeyHeader lets clients retry a create without duplicating it
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyTTL is how long a stored response can be replayed
const IdempotencyTTL = 24 * time.Hour

// StoredResponse is a replayable 2xx response
type StoredResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// ReplayStore persists responses by idempotency key. Get returns nil, nil
// for an unknown key.
type ReplayStore interface {
	Get(ctx context.Context, key string) (*StoredResponse, error)
	Put(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error
}

type RedisReplayStore struct {
	client *redis.Client
}

func NewRedisReplayStore(client *redis.Client) *RedisReplayStore {
	return &RedisReplayStore{client: client}
}

func (s *RedisReplayStore) Get(ctx context.Context, key string) (*StoredResponse, error) {
	raw, err := s.client.Get(ctx, "moodtrail:idempotency:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get replay: %w", err)
	}
	var resp StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	return &resp, nil
}

func (s *RedisReplayStore) Put(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	// first writer wins when two retries race
	return s.client.SetNX(ctx, "moodtrail:idempotency:"+key, raw, ttl).Err()
}

type MemoryReplayStore struct {
	mu      sync.Mutex
	entries map[string]memoryReplay
}

type memoryReplay struct {
	resp      StoredResponse
	expiresAt time.Time
}

func NewMemoryReplayStore() *MemoryReplayStore {
	return &MemoryReplayStore{entries: make(map[string]memoryReplay)}
}

func (s *MemoryReplayStore) Get(_ context.Context, key string) (*StoredResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, nil
	}
	resp := e.resp
	return &resp, nil
}

func (s *MemoryReplayStore) Put(_ context.Context, key string, resp StoredResponse, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok && time.Now().Before(e.expiresAt) {
		return nil
	}
	s.entries[key] = memoryReplay{resp: resp, expiresAt: time.Now().Add(ttl)}
	return nil
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a create is retried with the
// same Idempotency-Key. Keys are scoped to the user and route. Store errors
// never block the request. Must run after Auth.
func Idempotency(store ReplayStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		log := logger.Ctx(c.Request.Context())
		scoped := UserID(c) + ":" + c.FullPath() + ":" + key

		stored, err := store.Get(c.Request.Context(), scoped)
		if err != nil {
			log.Warn("idempotency lookup failed", logger.Err(err))
		}
		if stored != nil {
			log.Debug("replaying idempotent response", logger.String("key", key))
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < 200 || status >= 300 {
			return
		}
		resp := StoredResponse{Status: status, Body: json.RawMessage(w.body.Bytes())}
		if err := store.Put(c.Request.Context(), scoped, resp, IdempotencyTTL); err != nil {
			log.Warn("idempotency store failed", logger.Err(err))
		}
	}
}
