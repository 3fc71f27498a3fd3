package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/indexing"
)

// RedisIndexer stores documents as JSON strings and keeps one id set per index
type RedisIndexer struct {
	client redis.Cmdable
	prefix string
	logger coreport.Logger
}

var _ indexing.Indexer = (*RedisIndexer)(nil)

// NewRedisIndexer creates an indexer. Every key is prefixed with prefix.
func NewRedisIndexer(client redis.Cmdable, prefix string, logger coreport.Logger) *RedisIndexer {
	return &RedisIndexer{client: client, prefix: prefix, logger: logger}
}

func (i *RedisIndexer) docKey(index, id string) string {
	return fmt.Sprintf("%s%s:doc:%s", i.prefix, index, id)
}

func (i *RedisIndexer) setKey(index string) string {
	return fmt.Sprintf("%s%s:ids", i.prefix, index)
}

// Index stores or replaces the document
func (i *RedisIndexer) Index(ctx context.Context, doc indexing.Document) error {
	if doc.Index == "" || doc.ID == "" {
		return errors.New("index document: index and id are required")
	}

	body, err := json.Marshal(doc.Body)
	if err != nil {
		return fmt.Errorf("encode document %s/%s: %w", doc.Index, doc.ID, err)
	}

	_, err = i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, i.docKey(doc.Index, doc.ID), body, 0)
		pipe.SAdd(ctx, i.setKey(doc.Index), doc.ID)
		return nil
	})
	if err != nil {
		i.logger.Error("Failed to index document", map[string]any{
			"index": doc.Index,
			"id":    doc.ID,
			"error": err.Error(),
		})
		return fmt.Errorf("index document %s/%s: %w", doc.Index, doc.ID, err)
	}

	i.logger.Debug("Document indexed", map[string]any{
		"index": doc.Index,
		"id":    doc.ID,
	})
	return nil
}

// Delete removes the document. Removing a missing document is not an error.
func (i *RedisIndexer) Delete(ctx context.Context, index, id string) error {
	_, err := i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, i.docKey(index, id))
		pipe.SRem(ctx, i.setKey(index), id)
		return nil
	})
	if err != nil {
		i.logger.Error("Failed to delete document", map[string]any{
			"index": index,
			"id":    id,
			"error": err.Error(),
		})
		return fmt.Errorf("delete document %s/%s: %w", index, id, err)
	}

	i.logger.Debug("Document removed from index", map[string]any{
		"index": index,
		"id":    id,
	})
	return nil
}

// Get returns the body of a document and whether it exists
func (i *RedisIndexer) Get(ctx context.Context, index, id string) (map[string]any, bool, error) {
	raw, err := i.client.Get(ctx, i.docKey(index, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get document %s/%s: %w", index, id, err)
	}

	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false, fmt.Errorf("decode document %s/%s: %w", index, id, err)
	}
	return body, true, nil
}

// IDs lists the ids of every document in an index
func (i *RedisIndexer) IDs(ctx context.Context, index string) ([]string, error) {
	ids, err := i.client.SMembers(ctx, i.setKey(index)).Result()
	if err != nil {
		return nil, fmt.Errorf("list index %s: %w", index, err)
	}
	return ids, nil
}

// Ping checks that redis is reachable
func (i *RedisIndexer) Ping(ctx context.Context) error {
	return i.client.Ping(ctx).Err()
}
