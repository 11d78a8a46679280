package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
)

const (
	resultsKey = "hexstorm:results"

	MaxResults = 100
)

type ResultRepository struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) *ResultRepository {
	return &ResultRepository{
		client: client,
	}
}

// Save prepends a finished match and keeps only the newest MaxResults entries.
func (that *ResultRepository) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.LPush(ctx, resultsKey, resultJSON)
	pipe.LTrim(ctx, resultsKey, 0, MaxResults-1)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// List returns up to limit results, newest first.
func (that *ResultRepository) List(ctx context.Context, limit int64) ([]*entity.Result, error) {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	response, err := that.client.LRange(ctx, resultsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.Result, 0, len(response))
	for _, item := range response {
		var result entity.Result
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}
