package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/railtrace/railtrace/pkg/dataaggregator/source/cachedresults"
	"github.com/railtrace/railtrace/pkg/redis_client"
)

const queueName = "pnr-refresh-queue"

const numConsumers = 2
const batchSize = 10
const maxParallelFetches = 4

var refreshQueue rmq.Queue
var refreshQueueMutex sync.Mutex

// openQueue lazily opens the publish side of the refresh queue. Enqueue
// runs on concurrent request handlers, so the init is guarded.
func openQueue() (rmq.Queue, error) {
	refreshQueueMutex.Lock()
	defer refreshQueueMutex.Unlock()

	if refreshQueue == nil {
		if redis_client.QueueConnection == nil {
			return nil, fmt.Errorf("queue connection is not open")
		}

		queue, err := redis_client.QueueConnection.OpenQueue(queueName)
		if err != nil {
			return nil, err
		}
		refreshQueue = queue
	}

	return refreshQueue, nil
}

// Enqueue schedules a PNR number for a background status refresh. A
// lookup never waits on this; the queue just keeps cached statuses from
// drifting while charts are being prepared.
func Enqueue(pnrNumber string) error {
	queue, err := openQueue()
	if err != nil {
		return err
	}

	return queue.Publish(pnrNumber)
}

// StartConsumers runs the background refresh consumers against the
// given cache source.
func StartConsumers(cacheSource *cachedresults.Source) {
	log.Info().Str("queue", queueName).Msg("Starting refresh consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(queueName)
	if err != nil {
		panic(err)
	}
	if err := queue.StartConsuming(numConsumers*batchSize, 1*time.Second); err != nil {
		panic(err)
	}

	for i := 0; i < numConsumers; i++ {
		startQueueConsumer(queue, i, cacheSource)
	}
}

func startQueueConsumer(queue rmq.Queue, id int, cacheSource *cachedresults.Source) {
	log.Info().Msgf("Starting refresh consumer %d", id)

	if _, err := queue.AddBatchConsumer(fmt.Sprintf("pnr-refresh-queue-%d", id), batchSize, 2*time.Second, NewBatchConsumer(id, cacheSource)); err != nil {
		panic(err)
	}
}

type BatchConsumer struct {
	id int

	cacheSource *cachedresults.Source
}

func NewBatchConsumer(id int, cacheSource *cachedresults.Source) *BatchConsumer {
	return &BatchConsumer{id: id, cacheSource: cacheSource}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	fetchPool := pool.New().WithMaxGoroutines(maxParallelFetches)

	for _, payload := range payloads {
		pnrNumber := payload

		fetchPool.Go(func() {
			if err := consumer.cacheSource.RefreshPNRStatus(context.Background(), pnrNumber); err != nil {
				log.Warn().Err(err).Str("pnr", pnrNumber).Msg("Failed to refresh PNR status")
			}
		})
	}

	fetchPool.Wait()

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to acknowledge refresh batch")
		}
	}
}

// StartCleaner periodically returns unacked deliveries from dead
// consumers back to the ready list.
func StartCleaner() {
	cleaner := rmq.NewCleaner(redis_client.QueueConnection)

	log.Info().Msg("Starting pnr-refresh-queue cleaner process")

	for range time.Tick(5 * time.Minute) {
		returned, err := cleaner.Clean()
		if err != nil {
			log.Error().Err(err).Msg("Failed to clean")
			continue
		}

		if returned != 0 {
			log.Info().Msgf("Cleaned %d records", returned)
		}
	}
}
