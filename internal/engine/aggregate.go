// Package engine implements the pure spending-analysis transforms: category
// aggregation, profile normalization, character matching and peer
// comparison. Every function here is a stateless, deterministic function of
// its inputs; persistence and transport live elsewhere.
package engine

import "sobi/internal/core"

// Aggregate reduces a transaction list into per-category counts, totals and
// percentages. Empty input yields an empty set. Amounts are summed as-is;
// validating them is the classifier's contract, not this function's.
//
// Percentages use two denominators: ordinary categories are computed
// against the total excluding 송금 (transfers), while the 송금 bucket's own
// percentage is computed against the total including it. This asymmetry
// reproduces the deployed behavior and is pending product-owner
// confirmation; do not "fix" it here.
func Aggregate(txs []core.Transaction) core.SummarySet {
	set := make(core.SummarySet)
	if len(txs) == 0 {
		return set
	}

	var grandTotal int64
	for _, tx := range txs {
		s := set[tx.Category]
		s.Count++
		s.TotalAmount += tx.Amount
		set[tx.Category] = s
		grandTotal += tx.Amount
	}

	spendTotal := grandTotal - set[core.CategoryTransfer].TotalAmount

	for cat, s := range set {
		denom := spendTotal
		if cat == core.CategoryTransfer {
			denom = grandTotal
		}
		if denom > 0 {
			s.Percentage = float64(s.TotalAmount) / float64(denom) * 100
		} else {
			s.Percentage = 0
		}
		set[cat] = s
	}

	return set
}

// CategoryTotals flattens a summary set into raw per-category totals.
func CategoryTotals(set core.SummarySet) map[core.Category]int64 {
	totals := make(map[core.Category]int64, len(set))
	for cat, s := range set {
		totals[cat] = s.TotalAmount
	}
	return totals
}
