package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const updateMaxRetries = 3

// RedisSessionStore persists sessions in Redis with a TTL, so conversations
// survive instance restarts. Concurrent merges for the same conversation use
// an optimistic WATCH transaction.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration, tracer trace.Tracer) *RedisSessionStore {
	if client == nil {
		panic("assistant: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if tracer == nil {
		tracer = otel.Tracer("agency.internal.assistant.sessions")
	}
	return &RedisSessionStore{client: client, ttl: ttl, tracer: tracer}
}

func sessionKey(id string) string {
	return fmt.Sprintf("assistant:session:%s", id)
}

// Get loads a session, or ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "assistant.load_session")
	defer span.End()

	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("assistant: failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("assistant: failed to decode session: %w", err)
	}
	return &session, nil
}

// Update applies fn inside a WATCH transaction; a concurrent write to the
// same session aborts the transaction and the merge is retried on a fresh
// snapshot.
func (s *RedisSessionStore) Update(ctx context.Context, id string, fn func(*Session)) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "assistant.update_session")
	defer span.End()

	key := sessionKey(id)
	var updated Session

	txn := func(tx *redis.Tx) error {
		session := Session{ID: id, CreatedAt: time.Now().UTC()}
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("assistant: failed to load session: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(data, &session); err != nil {
				return fmt.Errorf("assistant: failed to decode session: %w", err)
			}
		}

		fn(&session)
		updated = session

		encoded, err := json.Marshal(&session)
		if err != nil {
			return fmt.Errorf("assistant: failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < updateMaxRetries; i++ {
		err = s.client.Watch(ctx, txn, key)
		if err == nil {
			return &updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	span.RecordError(err)
	return nil, fmt.Errorf("assistant: session update failed: %w", err)
}

// Reset removes every stored session. Intended for tests.
func (s *RedisSessionStore) Reset(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "assistant.reset_sessions")
	defer span.End()

	iter := s.client.Scan(ctx, 0, sessionKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			span.RecordError(err)
			return fmt.Errorf("assistant: failed to delete session: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("assistant: session scan failed: %w", err)
	}
	return nil
}
