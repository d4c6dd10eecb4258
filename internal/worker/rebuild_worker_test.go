package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"sobi/internal/amqp"
	"sobi/internal/core"
)

type stubRebuilder struct {
	calls atomic.Int64
	err   error
}

func (r *stubRebuilder) Rebuild(context.Context) (core.SummarySet, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return core.SummarySet{}, nil
}

func TestHandleSnapshotCommitted(t *testing.T) {
	rb := &stubRebuilder{}
	w := NewRebuildWorker(rb, nil, time.Minute)

	msg := amqp.NewSnapshotCommittedMessage(3, 535000)
	if err := w.HandleSnapshotCommitted(context.Background(), msg); err != nil {
		t.Fatalf("HandleSnapshotCommitted: %v", err)
	}
	if rb.calls.Load() != 1 {
		t.Errorf("rebuild called %d times, want 1", rb.calls.Load())
	}
}

func TestHandleSnapshotCommitted_RebuildError(t *testing.T) {
	rb := &stubRebuilder{err: errors.New("store down")}
	w := NewRebuildWorker(rb, nil, time.Minute)

	msg := amqp.NewSnapshotCommittedMessage(1, 1000)
	if err := w.HandleSnapshotCommitted(context.Background(), msg); err == nil {
		t.Fatal("expected error to propagate for requeue")
	}
}

func TestRun_PeriodicRebuild(t *testing.T) {
	rb := &stubRebuilder{}
	w := NewRebuildWorker(rb, nil, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := w.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
	if rb.calls.Load() == 0 {
		t.Error("periodic rebuild never ran")
	}
}

func TestRun_PeriodicRebuildErrorIsNotFatal(t *testing.T) {
	rb := &stubRebuilder{err: errors.New("flaky")}
	w := NewRebuildWorker(rb, nil, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := w.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
	if rb.calls.Load() < 2 {
		t.Errorf("rebuild retried %d times, want at least 2", rb.calls.Load())
	}
}

func TestNewRebuildWorker_DefaultInterval(t *testing.T) {
	w := NewRebuildWorker(&stubRebuilder{}, nil, 0)
	if w.interval != DefaultRebuildInterval {
		t.Errorf("interval = %v, want %v", w.interval, DefaultRebuildInterval)
	}
}
