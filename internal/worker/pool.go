package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueRecibo = "jobs:recibo"
	QueueEmail  = "jobs:email"

	// MaxAttempts is how many times a job runs before it is moved to the DLQ.
	MaxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
	Replays  int             `json:"replays,omitempty"` // times revived from the DLQ
}

// Handler processes one job payload. A non-nil error re-queues the job until
// MaxAttempts is reached.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueRecibo pushes a receipt job to Redis.
func (d *Dispatcher) EnqueueRecibo(ctx context.Context, payload ReciboJobPayload) error {
	return d.enqueue(ctx, QueueRecibo, "recibo", payload)
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return push(ctx, d.rdb, queue, Job{Type: jobType, Payload: data})
}

func push(ctx context.Context, rdb *redis.Client, queue string, job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the job queues with a fixed number of goroutines.
type Pool struct {
	rdb      *redis.Client
	handlers map[string]Handler // keyed by queue
}

func NewPool(rdb *redis.Client, handlers map[string]Handler) *Pool {
	return &Pool{rdb: rdb, handlers: handlers}
}

// Start launches numWorkers goroutines consuming every queue with a handler.
// Each goroutine blocks on BRPOP, zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) queues() []string {
	queues := make([]string, 0, len(p.handlers))
	for _, q := range []string{QueueRecibo, QueueEmail} {
		if _, ok := p.handlers[q]; ok {
			queues = append(queues, q)
		}
	}
	return queues
}

func (p *Pool) run(ctx context.Context, id int) {
	queues := p.queues()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.process(ctx, result[0], result[1])
		}
	}
}

// process runs one raw job. Failed jobs go back to the queue until
// MaxAttempts, then to the DLQ.
func (p *Pool) process(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		quoted, _ := json.Marshal(raw)
		SendToDLQ(ctx, p.rdb, queue, Job{Type: "unknown", Payload: quoted}, "invalid envelope: "+err.Error())
		return
	}

	handler, ok := p.handlers[queue]
	if !ok {
		log.Error().Str("queue", queue).Msg("no handler for queue")
		return
	}

	err := handler(ctx, job.Payload)
	if err == nil {
		log.Info().Str("type", job.Type).Str("queue", queue).Msg("job processed")
		return
	}

	job.Attempts++
	if job.Attempts >= MaxAttempts {
		SendToDLQ(ctx, p.rdb, queue, job, err.Error())
		return
	}
	log.Warn().Err(err).Str("queue", queue).Int("attempt", job.Attempts).Msg("job failed, re-queued")
	if err := push(ctx, p.rdb, queue, job); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("failed to re-queue job")
	}
}
