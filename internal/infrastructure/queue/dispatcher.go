package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

type task struct {
	key string
	run func(ctx context.Context)
}

// Dispatcher executes detached units of work on a fixed set of workers,
// sharded by key so tasks for the same entity run in order. Semantics are
// at-most-once and best-effort: a full worker channel drops the task, and
// failures inside a task never propagate to the caller.
type Dispatcher struct {
	workers []chan task
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan task, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan task, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a task to the worker responsible for its key. Never
// blocks: when the worker's buffer is full the task is dropped and logged.
func (d *Dispatcher) Enqueue(key string, run func(ctx context.Context)) {
	t := task{key: key, run: run}
	select {
	case d.workers[d.shardIndex(key)] <- t:
	default:
		d.log.Warn().Str("key", key).Msg("dispatcher queue full, task dropped")
	}
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan task) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-ch:
			if !ok {
				return
			}
			d.execute(ctx, id, t)
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, id int, t task) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).
				Str("key", t.key).
				Int("worker_id", id).
				Msg("background task panicked")
		}
	}()
	t.run(ctx)
}
