// Package worker keeps the stored category summary in sync with the
// transaction snapshot.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"sobi/internal/amqp"
	"sobi/internal/core"
)

// DefaultRebuildInterval is the periodic fallback cadence, covering
// snapshot events lost while the broker or worker was down.
const DefaultRebuildInterval = 15 * time.Minute

// Rebuilder recomputes and stores the category summary.
type Rebuilder interface {
	Rebuild(ctx context.Context) (core.SummarySet, error)
}

// SnapshotConsumer delivers snapshot committed events.
type SnapshotConsumer interface {
	ConsumeSnapshotCommitted(ctx context.Context, handler func(*amqp.SnapshotCommittedMessage) error) error
}

// RebuildWorker rebuilds the summary on snapshot events and on a
// periodic timer.
type RebuildWorker struct {
	rebuilder Rebuilder
	consumer  SnapshotConsumer
	interval  time.Duration
}

func NewRebuildWorker(rebuilder Rebuilder, consumer SnapshotConsumer, interval time.Duration) *RebuildWorker {
	if interval <= 0 {
		interval = DefaultRebuildInterval
	}
	return &RebuildWorker{
		rebuilder: rebuilder,
		consumer:  consumer,
		interval:  interval,
	}
}

// HandleSnapshotCommitted processes one snapshot event. Errors propagate
// to the consumer, which requeues the delivery.
func (w *RebuildWorker) HandleSnapshotCommitted(ctx context.Context, msg *amqp.SnapshotCommittedMessage) error {
	set, err := w.rebuilder.Rebuild(ctx)
	if err != nil {
		return fmt.Errorf("rebuild summary: %w", err)
	}

	slog.InfoContext(ctx, "Rebuilt summary from snapshot event",
		"snapshot_count", msg.Count,
		"snapshot_total", msg.TotalAmount,
		"categories", len(set))
	return nil
}

// RebuildOnce runs a single periodic rebuild. Failures are logged, not
// fatal: the next tick retries.
func (w *RebuildWorker) RebuildOnce(ctx context.Context) {
	set, err := w.rebuilder.Rebuild(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Periodic rebuild failed", "error", err)
		return
	}
	slog.DebugContext(ctx, "Periodic rebuild complete", "categories", len(set))
}

// Run consumes snapshot events and runs the periodic fallback until the
// context is cancelled.
func (w *RebuildWorker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if w.consumer != nil {
		g.Go(func() error {
			return w.consumer.ConsumeSnapshotCommitted(ctx, func(msg *amqp.SnapshotCommittedMessage) error {
				return w.HandleSnapshotCommitted(ctx, msg)
			})
		})
	} else {
		slog.InfoContext(ctx, "No AMQP consumer configured, relying on periodic rebuild only")
	}

	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				w.RebuildOnce(ctx)
			}
		}
	})

	return g.Wait()
}
