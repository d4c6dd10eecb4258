package store

import (
	"context"
	"encoding/json"
	"fmt"

	"sobi/internal/core"
)

// Snapshots reads and writes typed snapshots on top of a KV backend.
// All documents are stored as JSON.
type Snapshots struct {
	kv KV
}

// NewSnapshots wraps a backend with the snapshot codec.
func NewSnapshots(kv KV) *Snapshots {
	return &Snapshots{kv: kv}
}

func (s *Snapshots) Close() error {
	return s.kv.Close()
}

func (s *Snapshots) Transactions(ctx context.Context) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := s.get(ctx, KeyTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *Snapshots) PutTransactions(ctx context.Context, txs []core.Transaction) error {
	return s.put(ctx, KeyTransactions, txs)
}

func (s *Snapshots) Summary(ctx context.Context) (core.SummarySet, error) {
	var set core.SummarySet
	if err := s.get(ctx, KeySummary, &set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Snapshots) PutSummary(ctx context.Context, set core.SummarySet) error {
	return s.put(ctx, KeySummary, set)
}

func (s *Snapshots) Selections(ctx context.Context) (core.DemographicSelections, error) {
	var sel core.DemographicSelections
	if err := s.get(ctx, KeySelections, &sel); err != nil {
		return core.DemographicSelections{}, err
	}
	return sel, nil
}

func (s *Snapshots) PutSelections(ctx context.Context, sel core.DemographicSelections) error {
	return s.put(ctx, KeySelections, sel)
}

func (s *Snapshots) get(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w: %v", key, ErrCorruptSnapshot, err)
	}
	return nil
}

func (s *Snapshots) put(ctx context.Context, key string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
