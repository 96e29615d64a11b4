package history

import (
	"context"
	"errors"

	"github.com/railtrace/railtrace/pkg/redis_client"
)

var ErrNotConnected = errors.New("redis is not connected")

// Recent PNR searches, newest first, capped so the list stays a quick
// pick-again strip rather than an archive.
const recentSearchesKey = "pnr_recent_searches"
const maxRecentSearches = 5

// Add records a PNR number as the most recent search, deduplicating any
// earlier occurrence.
func Add(ctx context.Context, pnrNumber string) error {
	if redis_client.Client == nil {
		return ErrNotConnected
	}

	pipe := redis_client.Client.TxPipeline()

	pipe.LRem(ctx, recentSearchesKey, 0, pnrNumber)
	pipe.LPush(ctx, recentSearchesKey, pnrNumber)
	pipe.LTrim(ctx, recentSearchesKey, 0, maxRecentSearches-1)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the recent searches, newest first.
func List(ctx context.Context) ([]string, error) {
	if redis_client.Client == nil {
		return nil, ErrNotConnected
	}

	return redis_client.Client.LRange(ctx, recentSearchesKey, 0, maxRecentSearches-1).Result()
}

// Remove deletes a PNR number from the recent searches.
func Remove(ctx context.Context, pnrNumber string) error {
	if redis_client.Client == nil {
		return ErrNotConnected
	}

	return redis_client.Client.LRem(ctx, recentSearchesKey, 0, pnrNumber).Err()
}
