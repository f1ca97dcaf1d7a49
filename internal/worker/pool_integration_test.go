//go:build integration

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	c, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })
	url, err := c.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(ctx, url)
	require.NoError(t, err)
	return rdb
}

func TestPool_ReintentaYLuegoDLQ(t *testing.T) {
	rdb := newRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	failing := func(context.Context, json.RawMessage) error {
		calls.Add(1)
		return errors.New("smtp caído")
	}
	NewPool(rdb, map[string]Handler{QueueEmail: failing}).Start(ctx, 1)

	require.NoError(t, NewDispatcher(rdb).EnqueueEmail(ctx, EmailJobPayload{ToEmail: "ana@example.com"}))

	require.Eventually(t, func() bool {
		n, err := DLQLength(ctx, rdb, QueueEmail)
		return err == nil && n == 1
	}, 20*time.Second, 100*time.Millisecond)
	assert.EqualValues(t, MaxAttempts, calls.Load())

	stats, err := DLQStats(ctx, rdb)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{QueueRecibo: 0, QueueEmail: 1}, stats)
}

func TestReplayDLQ(t *testing.T) {
	rdb := newRedis(t)
	ctx := context.Background()

	payload, _ := json.Marshal(EmailJobPayload{ToEmail: "ana@example.com"})
	SendToDLQ(ctx, rdb, QueueEmail, Job{Type: "email", Payload: payload, Attempts: MaxAttempts}, "smtp caído")
	SendToDLQ(ctx, rdb, QueueEmail, Job{Type: "email", Payload: payload, Attempts: MaxAttempts, Replays: MaxReplays}, "smtp caído")

	breaker := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, OpenTimeout: time.Hour})
	_ = breaker.Execute(func() error { return errors.New("x") })
	assert.Zero(t, ReplayDLQ(ctx, RetryCronConfig{RDB: rdb, Breaker: breaker}))

	assert.Equal(t, 1, ReplayDLQ(ctx, RetryCronConfig{RDB: rdb}))

	n, err := DLQLength(ctx, rdb, QueueEmail)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "the exhausted entry stays in the DLQ")

	raw, err := rdb.RPop(ctx, QueueEmail).Result()
	require.NoError(t, err)
	var job Job
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, 1, job.Replays)
	assert.Zero(t, job.Attempts)
}
