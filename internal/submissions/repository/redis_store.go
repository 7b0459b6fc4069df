package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/project-submissions/internal/submissions/domain"
)

const DefaultRedisKey = "submissions:projects"

// RedisStore keeps each project as a JSON element of a Redis list.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a RedisStore using the given list key
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) ([]domain.Project, error) {
	items, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(items))
	for _, item := range items {
		var p domain.Project
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Save replaces the list in a single MULTI/EXEC transaction.
func (r *RedisStore) Save(ctx context.Context, projects []domain.Project) error {
	values := make([]interface{}, 0, len(projects))
	for _, p := range projects {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal project: %w", err)
		}
		values = append(values, data)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key)
	if len(values) > 0 {
		pipe.RPush(ctx, r.key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

func (r *RedisStore) Append(ctx context.Context, project domain.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append project: %w", err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
