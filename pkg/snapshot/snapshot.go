package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// Writer stores a point-in-time list of movie ids under a key. Writes
// overwrite any previous snapshot for the key, there is no merge.
type Writer interface {
	Write(ctx context.Context, key string, movieIDs []string) error
}

// FileWriter mirrors snapshots to flat JSON files, one file per key.
type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

func (w *FileWriter) Write(_ context.Context, key string, movieIDs []string) error {
	if movieIDs == nil {
		movieIDs = []string{}
	}
	data, err := json.MarshalIndent(movieIDs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	path := filepath.Join(w.dir, key+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

// RedisWriter stores snapshots under snapshot:<key> with no expiry.
type RedisWriter struct {
	client *redis.Client
}

func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{client: client}
}

func (w *RedisWriter) Write(ctx context.Context, key string, movieIDs []string) error {
	if movieIDs == nil {
		movieIDs = []string{}
	}
	data, err := json.Marshal(movieIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}
	if err := w.client.Set(ctx, "snapshot:"+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot %s: %w", key, err)
	}
	return nil
}
