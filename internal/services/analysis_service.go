// Package services orchestrates imports, aggregation and matching across
// the snapshot store, the classification service and AMQP.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"sobi/internal/catalog"
	"sobi/internal/classify"
	"sobi/internal/core"
	"sobi/internal/engine"
	"sobi/internal/store"
)

// Classifier sends a spreadsheet out for transaction classification.
type Classifier interface {
	ProcessWorkbook(ctx context.Context, filename string, file io.Reader) ([]core.Transaction, error)
}

// SnapshotPublisher announces committed snapshots to the rebuild worker.
type SnapshotPublisher interface {
	PublishSnapshotCommitted(ctx context.Context, count int, totalAmount int64) error
}

// ImportResult reports what an upload produced.
type ImportResult struct {
	Count       int   `json:"count"`
	TotalAmount int64 `json:"total_amount"`
	// Classified is false when the classification service was
	// unreachable and the workbook was parsed locally instead.
	Classified bool `json:"classified"`
}

// ComparisonResult bundles the peer rows with their narration lines.
type ComparisonResult struct {
	Category  core.Category              `json:"category"`
	Rows      []core.PeerComparisonRow   `json:"rows"`
	Narration []core.ComparisonNarration `json:"narration"`
}

// AnalysisService owns the single-user analysis state.
type AnalysisService struct {
	snaps      *store.Snapshots
	classifier Classifier
	publisher  SnapshotPublisher
	tables     *catalog.PeerTables
}

func NewAnalysisService(snaps *store.Snapshots, classifier Classifier, publisher SnapshotPublisher) *AnalysisService {
	return &AnalysisService{
		snaps:      snaps,
		classifier: classifier,
		publisher:  publisher,
		tables:     catalog.DefaultPeerTables(),
	}
}

// ImportSpreadsheet classifies the uploaded workbook and replaces the
// transaction snapshot. When the classification service fails, the
// workbook is parsed locally without category assignment.
func (s *AnalysisService) ImportSpreadsheet(ctx context.Context, filename string, file io.Reader) (ImportResult, error) {
	raw, err := io.ReadAll(file)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read upload: %w", err)
	}

	classified := true
	var txs []core.Transaction
	if s.classifier != nil {
		txs, err = s.classifier.ProcessWorkbook(ctx, filename, bytes.NewReader(raw))
	} else {
		err = errors.New("no classifier configured")
	}
	if err != nil {
		slog.WarnContext(ctx, "Classification failed, parsing workbook locally",
			"filename", filename, "error", err)
		classified = false
		txs, err = classify.ParseWorkbook(ctx, bytes.NewReader(raw))
		if err != nil {
			return ImportResult{}, fmt.Errorf("parse workbook: %w", err)
		}
	}

	if err := s.ReplaceTransactions(ctx, txs); err != nil {
		return ImportResult{}, err
	}

	var total int64
	for _, tx := range txs {
		total += tx.Amount
	}

	return ImportResult{Count: len(txs), TotalAmount: total, Classified: classified}, nil
}

// ReplaceTransactions swaps the full transaction snapshot, recomputes
// the category summary and publishes a snapshot committed event.
func (s *AnalysisService) ReplaceTransactions(ctx context.Context, txs []core.Transaction) error {
	var total int64
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		total += tx.Amount
	}

	if err := s.snaps.PutTransactions(ctx, txs); err != nil {
		return fmt.Errorf("store transactions: %w", err)
	}

	set := engine.Aggregate(txs)
	if err := s.snaps.PutSummary(ctx, set); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}

	// Publish failures never fail the request: the snapshot is already
	// committed and the worker catches up on its periodic rebuild.
	if s.publisher != nil {
		if err := s.publisher.PublishSnapshotCommitted(ctx, len(txs), total); err != nil {
			slog.ErrorContext(ctx, "Failed to publish snapshot committed message",
				"count", len(txs), "error", err)
		}
	}

	return nil
}

// Transactions returns the current snapshot, empty when nothing was
// ever imported.
func (s *AnalysisService) Transactions(ctx context.Context) ([]core.Transaction, error) {
	txs, err := s.snaps.Transactions(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return []core.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// Overview returns the category summary, recomputing it from the
// transaction snapshot when the stored one is missing or unreadable.
func (s *AnalysisService) Overview(ctx context.Context) (core.SummarySet, error) {
	set, err := s.snaps.Summary(ctx)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrCorruptSnapshot) {
		return nil, err
	}
	if errors.Is(err, store.ErrCorruptSnapshot) {
		slog.WarnContext(ctx, "Summary snapshot unreadable, recomputing", "error", err)
	}
	return s.Rebuild(ctx)
}

// Rebuild recomputes the summary from the transaction snapshot and
// stores it. Used by the worker and as the read-path fallback.
func (s *AnalysisService) Rebuild(ctx context.Context) (core.SummarySet, error) {
	txs, err := s.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	set := engine.Aggregate(txs)
	if err := s.snaps.PutSummary(ctx, set); err != nil {
		return nil, fmt.Errorf("store summary: %w", err)
	}
	return set, nil
}

// Character matches the user's spending profile against the archetype
// catalogue.
func (s *AnalysisService) Character(ctx context.Context) (core.MatchResult, error) {
	set, err := s.Overview(ctx)
	if err != nil {
		return core.MatchResult{}, err
	}

	profile := engine.NormalizeProfile(set)
	return engine.MatchCharacter(profile, catalog.Archetypes())
}

// Comparison compares the user's spend in one category against the six
// peer groups derived from the stored demographic selections.
func (s *AnalysisService) Comparison(ctx context.Context, cat core.Category) (ComparisonResult, error) {
	if !cat.IsValid() {
		return ComparisonResult{}, fmt.Errorf("%w: %s", core.ErrUnknownCategory, cat)
	}

	sel, err := s.Selections(ctx)
	if err != nil {
		return ComparisonResult{}, err
	}

	set, err := s.Overview(ctx)
	if err != nil {
		return ComparisonResult{}, err
	}

	rows := engine.ComparePeers(cat, sel, engine.CategoryTotals(set), s.tables)
	return ComparisonResult{
		Category:  cat,
		Rows:      rows,
		Narration: engine.NarrateComparison(rows),
	}, nil
}

// Selections returns the stored demographic selections, falling back to
// the defaults when the user skipped the characteristics step.
func (s *AnalysisService) Selections(ctx context.Context) (core.DemographicSelections, error) {
	sel, err := s.snaps.Selections(ctx)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrCorruptSnapshot) {
		return catalog.DefaultSelections(), nil
	}
	if err != nil {
		return core.DemographicSelections{}, err
	}
	return sel, nil
}

// SaveSelections validates and stores the demographic selections.
func (s *AnalysisService) SaveSelections(ctx context.Context, sel core.DemographicSelections) error {
	if !catalog.ValidateSelections(sel) {
		return fmt.Errorf("invalid demographic selections: %+v", sel)
	}
	if err := s.snaps.PutSelections(ctx, sel); err != nil {
		return fmt.Errorf("store selections: %w", err)
	}
	return nil
}

// Close releases the underlying store.
func (s *AnalysisService) Close() error {
	return s.snaps.Close()
}
