package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/sboard/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Source implements ports.DocumentSource using Redis.
// Documents are stored as plain string values, one key per document, with a
// ZSET index scored by expiry.
type Source struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Source)

// WithTTL sets the expiration for published documents.
func WithTTL(ttl time.Duration) Option {
	return func(s *Source) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for documents.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = prefix
	}
}

// New creates a new Redis source with options.
func New(address, password string, db int, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	src := &Source{
		client: client,
		prefix: "sboard:doc:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(src)
	}

	return src
}

func (s *Source) key(name string) string {
	return s.prefix + name
}

func (s *Source) indexKey() string {
	return s.prefix + "index"
}

// Put publishes a document under name.
func (s *Source) Put(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(name), data, s.ttl)

	// Score = Now + TTL. If TTL = 0, Score = +Inf (approx).
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: name,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Open retrieves the document from Redis.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	val, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return io.NopCloser(strings.NewReader(val)), nil
}

// Delete removes the document.
func (s *Source) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns published documents, pruning expired index entries first.
func (s *Source) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired documents: %w", err)
	}

	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the redis client.
func (s *Source) Close() error {
	return s.client.Close()
}
