package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/ariadne/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.GameStore using Redis. A sorted-set index keyed by
// expiration time backs List, so expired games fall out of listings even
// before Redis reclaims the value keys.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	enc    *EncryptionConfig
}

type Option func(*Store)

// WithTTL sets the expiration for game records.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for game records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis game store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis game store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "ariadne:game:",
		ttl:    0, // no expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the game to Redis.
func (s *Store) Save(ctx context.Context, game *domain.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	payload := string(data)
	if s.enc != nil {
		payload, err = s.enc.seal(data)
		if err != nil {
			return fmt.Errorf("failed to encrypt game: %w", err)
		}
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(game.ID), payload, s.ttl)

	// Index score is the expiration instant. With no TTL the record never
	// expires, so park it far in the future.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}

	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: game.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves a game from Redis.
func (s *Store) Load(ctx context.Context, id string) (*domain.Game, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	data := []byte(val)
	if s.enc != nil {
		// Fail secure: with encryption configured a plaintext record is an
		// error, not a fallback.
		data, err = s.enc.open(val)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt game: %w", err)
		}
	}

	var game domain.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// Delete removes the game and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey(), id)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns active game IDs, lazily pruning expired index entries.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired games: %w", err)
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return ids, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
