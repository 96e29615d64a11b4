package cachedresults

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"

	"github.com/railtrace/railtrace/pkg/dataaggregator"
	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source"
	"github.com/railtrace/railtrace/pkg/raildata"
	"github.com/railtrace/railtrace/pkg/redis_client"
)

// Train schedules barely change; PNR statuses go stale as charts are
// prepared.
const trainDetailsExpiration = 7 * 24 * time.Hour
const pnrStatusExpiration = 2 * time.Hour

// Source is a read-through redis cache in front of another data source.
type Source struct {
	UpstreamSource dataaggregator.DataSource

	trainCache *cache.Cache[*raildata.TrainDetails]
	pnrCache   *cache.Cache[*raildata.PNRStatus]
}

func (s *Source) Setup() {
	trainStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(trainDetailsExpiration))
	s.trainCache = cache.New[*raildata.TrainDetails](trainStore)

	pnrStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(pnrStatusExpiration))
	s.pnrCache = cache.New[*raildata.PNRStatus](pnrStore)
}

func (s *Source) GetName() string {
	return fmt.Sprintf("Cached Results (%s)", s.UpstreamSource.GetName())
}

func (s *Source) Supports() []reflect.Type {
	return s.UpstreamSource.Supports()
}

func (s *Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.TrainSchedule:
		return s.cachedTrainSchedule(q)
	case query.PNRStatus:
		return s.cachedPNRStatus(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s *Source) cachedTrainSchedule(q query.TrainSchedule) (interface{}, error) {
	ctx := context.Background()
	cacheKey := TrainCacheKey(q.TrainNumber)

	cached, err := s.trainCache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		return cached, nil
	}

	value, err := s.UpstreamSource.Lookup(q)
	if err != nil {
		return nil, err
	}

	details := value.(*raildata.TrainDetails)
	if err := s.trainCache.Set(ctx, cacheKey, details); err != nil {
		log.Warn().Err(err).Str("train", q.TrainNumber).Msg("Failed to cache train details")
	}

	return details, nil
}

func (s *Source) cachedPNRStatus(q query.PNRStatus) (interface{}, error) {
	ctx := context.Background()
	cacheKey := PNRCacheKey(q.PNRNumber)

	cached, err := s.pnrCache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		return cached, nil
	}

	value, err := s.UpstreamSource.Lookup(q)
	if err != nil {
		return nil, err
	}

	status := value.(*raildata.PNRStatus)
	if err := s.pnrCache.Set(ctx, cacheKey, status); err != nil {
		log.Warn().Err(err).Str("pnr", q.PNRNumber).Msg("Failed to cache PNR status")
	}

	return status, nil
}

// RefreshPNRStatus bypasses the cache, fetches fresh data upstream and
// rewrites the cached copy. Used by the background refresh consumers.
func (s *Source) RefreshPNRStatus(ctx context.Context, pnrNumber string) error {
	value, err := s.UpstreamSource.Lookup(query.PNRStatus{PNRNumber: pnrNumber})
	if err != nil {
		return err
	}

	return s.pnrCache.Set(ctx, PNRCacheKey(pnrNumber), value.(*raildata.PNRStatus))
}

func TrainCacheKey(trainNumber string) string {
	return fmt.Sprintf("train_%s", trainNumber)
}

func PNRCacheKey(pnrNumber string) string {
	return fmt.Sprintf("pnr_%s", pnrNumber)
}
