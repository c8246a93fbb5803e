// Package redisstore implements ports.Gateway on Redis.
//
// Each entity is a hash holding its kind, parent id, version and encoded
// payload. Two sets index it: the children of a parent by kind, and every
// entity of a kind. Writes run as Lua scripts so the version check, the
// increment and the index maintenance happen in one atomic step on the
// server.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/boardsync/internal/adapters/persistence/codec"
	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Gateway       = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const defaultPrefix = "boardsync"

// Config holds the connection settings.
type Config struct {
	// URL is a redis:// or rediss:// connection string.
	URL string
	// Prefix namespaces every key. Defaults to "boardsync".
	Prefix      string
	DialTimeout time.Duration
}

// Store is a ports.Gateway backed by Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// New wraps an existing client. An empty prefix falls back to the default.
func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Open parses cfg.URL, connects and verifies the server answers PING.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}
	return New(client, cfg.Prefix), nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "redis" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *Store) entityKey(id uuid.UUID) string {
	return s.prefix + ":entity:" + id.String()
}

func (s *Store) childrenPrefix(kind board.Kind) string {
	return s.prefix + ":children:" + kind.String() + ":"
}

func (s *Store) childrenKey(kind board.Kind, parent uuid.UUID) string {
	return s.childrenPrefix(kind) + parent.String()
}

func (s *Store) allKey(kind board.Kind) string {
	return s.prefix + ":all:" + kind.String()
}

// Load implements ports.Gateway.
func (s *Store) Load(ctx context.Context, kind board.Kind, id uuid.UUID) (board.Entity, error) {
	vals, err := s.client.HMGet(ctx, s.entityKey(id), "kind", "version", "data").Result()
	if err != nil {
		return nil, fmt.Errorf("loading %s %s: %w", kind, id, err)
	}
	e, ok, err := decodeFields(kind, vals)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", kind, id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return e, nil
}

// LoadSiblings implements ports.Gateway.
func (s *Store) LoadSiblings(ctx context.Context, kind board.Kind, parentID uuid.UUID) ([]board.Entity, error) {
	ids, err := s.client.SMembers(ctx, s.childrenKey(kind, parentID)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing %s children of %s: %w", kind, parentID, err)
	}
	return s.loadMany(ctx, kind, ids)
}

// List implements ports.Gateway.
func (s *Store) List(ctx context.Context, kind board.Kind) ([]board.Entity, error) {
	ids, err := s.client.SMembers(ctx, s.allKey(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}
	return s.loadMany(ctx, kind, ids)
}

// loadMany fetches ids in one pipeline. Entities deleted between the index
// read and the fetch are skipped.
func (s *Store) loadMany(ctx context.Context, kind board.Kind, ids []string) ([]board.Entity, error) {
	if len(ids) == 0 {
		return []board.Entity{}, nil
	}

	cmds := make([]*redis.SliceCmd, len(ids))
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, raw := range ids {
			cmds[i] = pipe.HMGet(ctx, s.prefix+":entity:"+raw, "kind", "version", "data")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %d %s entities: %w", len(ids), kind, err)
	}

	out := make([]board.Entity, 0, len(ids))
	for i, cmd := range cmds {
		e, ok, err := decodeFields(kind, cmd.Val())
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", kind, ids[i], err)
		}
		if ok {
			out = append(out, e)
		}
	}
	board.SortSiblings(out)
	return out, nil
}

// Insert implements ports.Gateway.
func (s *Store) Insert(ctx context.Context, e board.Entity) error {
	data, err := codec.Encode(e)
	if err != nil {
		return err
	}

	keys := []string{
		s.entityKey(e.Identity()),
		s.childrenKey(e.Kind(), e.ParentID()),
		s.allKey(e.Kind()),
	}
	code, err := insertScript.Run(ctx, s.client, keys,
		e.Kind().String(), e.ParentID().String(), e.CurrentVersion(), data, e.Identity().String(),
	).Int64()
	if err != nil {
		return fmt.Errorf("inserting %s: %w", board.Describe(e), err)
	}
	if code == codeConflict {
		return fmt.Errorf("%s already exists: %w", board.Describe(e), domain.ErrConflict)
	}
	return nil
}

// CommitConditional implements ports.Gateway.
func (s *Store) CommitConditional(ctx context.Context, e board.Entity, expectedVersion int64) (int64, error) {
	data, err := codec.Encode(e)
	if err != nil {
		return 0, err
	}

	keys := []string{
		s.entityKey(e.Identity()),
		s.childrenKey(e.Kind(), e.ParentID()),
	}
	res, err := commitScript.Run(ctx, s.client, keys,
		e.Kind().String(), expectedVersion, data, e.ParentID().String(), e.Identity().String(), s.childrenPrefix(e.Kind()),
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("committing %s: %w", board.Describe(e), err)
	}

	switch res {
	case codeNotFound:
		return 0, fmt.Errorf("%s: %w", board.Describe(e), domain.ErrNotFound)
	case codeConflict:
		return 0, fmt.Errorf("%s not at version %d: %w", board.Describe(e), expectedVersion, domain.ErrConflict)
	}
	return res, nil
}

// Delete implements ports.Gateway.
func (s *Store) Delete(ctx context.Context, kind board.Kind, id uuid.UUID) error {
	keys := []string{s.entityKey(id), s.allKey(kind)}
	code, err := deleteScript.Run(ctx, s.client, keys, kind.String(), id.String(), s.childrenPrefix(kind)).Int64()
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", kind, id, err)
	}
	if code != codeOK {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

var errCorrupt = errors.New("corrupt entity hash")

// decodeFields turns an HMGET reply of kind, version and data into an
// entity. ok is false when the hash is missing or holds another kind.
func decodeFields(kind board.Kind, vals []any) (board.Entity, bool, error) {
	if len(vals) != 3 {
		return nil, false, errCorrupt
	}
	storedKind, _ := vals[0].(string)
	if storedKind == "" || storedKind != kind.String() {
		return nil, false, nil
	}
	rawVersion, _ := vals[1].(string)
	version, err := strconv.ParseInt(rawVersion, 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("%w: version %q", errCorrupt, rawVersion)
	}
	data, _ := vals[2].(string)
	e, err := codec.Decode(kind, []byte(data), version)
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}
