package engine

import (
	"math"
	"testing"

	"sobi/internal/core"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAggregate_Empty(t *testing.T) {
	set := Aggregate(nil)
	if len(set) != 0 {
		t.Fatalf("empty input should yield empty set, got %d buckets", len(set))
	}

	set = Aggregate([]core.Transaction{})
	if len(set) != 0 {
		t.Fatalf("empty slice should yield empty set, got %d buckets", len(set))
	}
}

func TestAggregate_BasicBuckets(t *testing.T) {
	txs := []core.Transaction{
		{Amount: 35000, Category: core.CategoryFood},
		{Amount: 450000, Category: core.CategoryHousing},
		{Amount: 50000, Category: core.CategoryTransport},
	}

	set := Aggregate(txs)
	if len(set) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(set))
	}

	tests := []struct {
		cat   core.Category
		count int
		total int64
		pct   float64 // denominator 535000
	}{
		{core.CategoryFood, 1, 35000, 6.5421},
		{core.CategoryHousing, 1, 450000, 84.1121},
		{core.CategoryTransport, 1, 50000, 9.3458},
	}
	for _, tt := range tests {
		s, ok := set[tt.cat]
		if !ok {
			t.Fatalf("missing bucket %q", tt.cat)
		}
		if s.Count != tt.count || s.TotalAmount != tt.total {
			t.Errorf("%q: count/total = %d/%d, want %d/%d", tt.cat, s.Count, s.TotalAmount, tt.count, tt.total)
		}
		if !approxEqual(s.Percentage, tt.pct, 0.01) {
			t.Errorf("%q: percentage = %.4f, want %.4f", tt.cat, s.Percentage, tt.pct)
		}
	}
}

// The sum of bucket totals always equals the sum of input amounts.
func TestAggregate_TotalsPreserved(t *testing.T) {
	tests := []struct {
		name string
		txs  []core.Transaction
	}{
		{
			name: "mixed categories",
			txs: []core.Transaction{
				{Amount: 12000, Category: core.CategoryFood},
				{Amount: 8000, Category: core.CategoryFood},
				{Amount: 99999, Category: core.CategoryLeisure},
				{Amount: 0, Category: core.CategoryTelecom},
				{Amount: 40000, Category: core.CategoryTransfer},
			},
		},
		{
			name: "single bucket",
			txs: []core.Transaction{
				{Amount: 100, Category: core.CategoryEtc},
				{Amount: 200, Category: core.CategoryEtc},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want int64
			for _, tx := range tt.txs {
				want += tx.Amount
			}
			var got int64
			for _, s := range Aggregate(tt.txs) {
				got += s.TotalAmount
			}
			if got != want {
				t.Errorf("bucket totals sum to %d, input sums to %d", got, want)
			}
		})
	}
}

// Non-transfer percentages partition 100 whenever there is non-transfer
// spend.
func TestAggregate_PercentagePartition(t *testing.T) {
	txs := []core.Transaction{
		{Amount: 35000, Category: core.CategoryFood},
		{Amount: 450000, Category: core.CategoryHousing},
		{Amount: 50000, Category: core.CategoryTransport},
		{Amount: 7000, Category: core.CategoryTelecom},
		{Amount: 123456, Category: core.CategoryTransfer},
	}

	var sum float64
	for cat, s := range Aggregate(txs) {
		if cat == core.CategoryTransfer {
			continue
		}
		sum += s.Percentage
	}
	if !approxEqual(sum, 100, 0.01) {
		t.Errorf("non-transfer percentages sum to %.4f, want 100", sum)
	}
}

// 송금 is excluded from the denominator of ordinary categories but included
// in its own. Deployed behavior, reproduced on purpose.
func TestAggregate_TransferDenominatorAsymmetry(t *testing.T) {
	txs := []core.Transaction{
		{Amount: 60000, Category: core.CategoryTransfer},
		{Amount: 40000, Category: core.CategoryTransfer},
		{Amount: 50000, Category: core.CategoryFood},
	}

	set := Aggregate(txs)

	food := set[core.CategoryFood]
	if !approxEqual(food.Percentage, 100, 0.0001) {
		t.Errorf("식비 percentage = %.4f, want 100 (denominator excludes 송금)", food.Percentage)
	}

	transfer := set[core.CategoryTransfer]
	if transfer.Count != 2 || transfer.TotalAmount != 100000 {
		t.Fatalf("송금 bucket = %+v, want count 2 total 100000", transfer)
	}
	if !approxEqual(transfer.Percentage, 66.6667, 0.001) {
		t.Errorf("송금 percentage = %.4f, want 66.67 (denominator includes 송금)", transfer.Percentage)
	}
}

func TestAggregate_AllTransfer(t *testing.T) {
	txs := []core.Transaction{
		{Amount: 30000, Category: core.CategoryTransfer},
	}

	set := Aggregate(txs)
	if got := set[core.CategoryTransfer].Percentage; !approxEqual(got, 100, 0.0001) {
		t.Errorf("송금-only list: 송금 percentage = %.4f, want 100", got)
	}
}

func TestAggregate_ZeroAmounts(t *testing.T) {
	txs := []core.Transaction{
		{Amount: 0, Category: core.CategoryFood},
		{Amount: 0, Category: core.CategoryLeisure},
	}

	for cat, s := range Aggregate(txs) {
		if s.Percentage != 0 {
			t.Errorf("%q: percentage = %v, want 0 when there is no spend", cat, s.Percentage)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	set := core.SummarySet{
		core.CategoryFood:    {Count: 2, TotalAmount: 50000, Percentage: 50},
		core.CategoryLeisure: {Count: 1, TotalAmount: 50000, Percentage: 50},
	}

	totals := CategoryTotals(set)
	if totals[core.CategoryFood] != 50000 || totals[core.CategoryLeisure] != 50000 {
		t.Errorf("unexpected totals: %v", totals)
	}
	if totals[core.CategoryTelecom] != 0 {
		t.Error("missing category should read as zero")
	}
}
