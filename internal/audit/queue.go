// Package audit records who did what. Entries go through a bounded in-memory
// queue drained by one background writer: delivery is at-most-once, entries
// are dropped when the queue is full and lost if the process dies.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
)

type Writer interface {
	Insert(ctx context.Context, entry *models.AuditLogEntry) error
}

type Queue struct {
	log     *slog.Logger
	writer  Writer
	entries chan *models.AuditLogEntry

	mu      sync.RWMutex
	closed  bool
	done    chan struct{}
	dropped atomic.Int64
}

func NewQueue(log *slog.Logger, writer Writer, size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{
		log:     log,
		writer:  writer,
		entries: make(chan *models.AuditLogEntry, size),
		done:    make(chan struct{}),
	}
}

// Enqueue never blocks. It reports false when the entry was dropped.
func (q *Queue) Enqueue(entry *models.AuditLogEntry) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.entries <- entry:
		return true
	default:
		q.dropped.Add(1)
		q.log.Warn("audit queue full, dropping entry",
			slog.String("user_email", entry.UserEmail),
			slog.String("action", entry.Action),
			slog.String("resource_type", entry.ResourceType),
		)
		return false
	}
}

// Dropped returns how many entries were discarded because the queue was full.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Run writes entries until Close is called and the queue is drained.
// Writes use ctx; failures are logged and the entry is discarded.
func (q *Queue) Run(ctx context.Context) {
	defer close(q.done)

	for entry := range q.entries {
		if err := q.writer.Insert(ctx, entry); err != nil {
			q.log.Error("failed to write audit log",
				slog.String("user_email", entry.UserEmail),
				slog.String("resource_type", entry.ResourceType),
				sl.Err(err),
			)
		}
	}
}

// Close stops accepting entries and waits for Run to drain the queue or
// for ctx to expire.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.entries)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
