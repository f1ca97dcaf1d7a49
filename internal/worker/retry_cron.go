package worker

// retry_cron.go
// Background goroutine that periodically moves dead-lettered receipt and
// email jobs back to their queues. Email jobs usually die because the SMTP
// relay was down for all MaxAttempts, so they are only revived while the
// mailer's circuit breaker is not open.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 2 * time.Minute
	retryBatchSize    = 20

	// MaxReplays bounds how many times one job is revived from the DLQ.
	MaxReplays = 3
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB      *redis.Client
	Breaker  *infra.CircuitBreaker // mailer breaker; nil skips the check
	Interval time.Duration         // 0 means retryTickInterval
}

// StartRetryCron launches the replay goroutine. It stops with ctx.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	interval := cfg.Interval
	if interval <= 0 {
		interval = retryTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				ReplayDLQ(ctx, cfg)
			}
		}
	}()
}

// ReplayDLQ revives up to retryBatchSize entries per queue and returns how
// many were re-queued. Entries that reached MaxReplays are rotated back into
// the DLQ untouched.
func ReplayDLQ(ctx context.Context, cfg RetryCronConfig) int {
	replayed := 0
	for _, queue := range []string{QueueRecibo, QueueEmail} {
		if queue == QueueEmail && cfg.Breaker != nil && cfg.Breaker.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: mailer circuit open, skipping email DLQ")
			continue
		}
		replayed += replayQueue(ctx, cfg.RDB, queue)
	}
	if replayed > 0 {
		log.Info().Int("count", replayed).Msg("retry_cron: jobs revived from DLQ")
	}
	return replayed
}

func replayQueue(ctx context.Context, rdb *redis.Client, queue string) int {
	dlqKey := DLQPrefix + queue
	n, err := rdb.LLen(ctx, dlqKey).Result()
	if err != nil {
		log.Error().Err(err).Str("dlq_key", dlqKey).Msg("retry_cron: failed to read DLQ length")
		return 0
	}
	if n > retryBatchSize {
		n = retryBatchSize
	}

	replayed := 0
	for i := int64(0); i < n; i++ {
		raw, err := rdb.RPop(ctx, dlqKey).Result()
		if err != nil {
			return replayed
		}
		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.JobType == "unknown" || entry.Replays >= MaxReplays {
			// Not replayable: keep it for manual inspection.
			if err := rdb.LPush(ctx, dlqKey, raw).Err(); err != nil {
				log.Error().Err(err).Str("dlq_key", dlqKey).Msg("retry_cron: failed to keep DLQ entry")
			}
			continue
		}

		job := Job{Type: entry.JobType, Payload: entry.Payload, Replays: entry.Replays + 1}
		if err := push(ctx, rdb, queue, job); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("retry_cron: failed to re-queue, restoring DLQ entry")
			_ = rdb.RPush(ctx, dlqKey, raw).Err()
			return replayed
		}
		replayed++
	}
	return replayed
}
