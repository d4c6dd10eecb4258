package engine

import (
	"testing"

	"sobi/internal/core"
)

func summaryFor(amounts map[core.Category]int64) core.SummarySet {
	set := make(core.SummarySet, len(amounts))
	for cat, a := range amounts {
		set[cat] = core.CategorySummary{Count: 1, TotalAmount: a}
	}
	return set
}

func TestNormalizeProfile(t *testing.T) {
	tests := []struct {
		name    string
		amounts map[core.Category]int64
		want    core.Profile
	}{
		{
			name:    "empty summary is all zero",
			amounts: nil,
			want:    core.Profile{},
		},
		{
			name: "zero spend in the four categories is all zero, not NaN",
			amounts: map[core.Category]int64{
				core.CategoryHousing: 450000, // outside the profile set
			},
			want: core.Profile{},
		},
		{
			name: "even split",
			amounts: map[core.Category]int64{
				core.CategoryFood:      10000,
				core.CategoryTransport: 10000,
				core.CategoryTelecom:   10000,
				core.CategoryLeisure:   10000,
			},
			want: core.Profile{Food: 25, Transport: 25, Telecom: 25, Leisure: 25},
		},
		{
			name: "shares of the four-category sub-total only",
			amounts: map[core.Category]int64{
				core.CategoryFood:      350000,
				core.CategoryTransport: 250000,
				core.CategoryTelecom:   150000,
				core.CategoryLeisure:   250000,
				core.CategoryHousing:   9000000, // ignored, not an other-bucket
			},
			want: core.Profile{Food: 35, Transport: 25, Telecom: 15, Leisure: 25},
		},
		{
			name: "half rounds away from zero, sums may drift off 100",
			amounts: map[core.Category]int64{
				core.CategoryFood:      125, // 12.5% -> 13
				core.CategoryTransport: 875, // 87.5% -> 88
			},
			want: core.Profile{Food: 13, Transport: 88},
		},
		{
			name: "missing categories default to zero",
			amounts: map[core.Category]int64{
				core.CategoryFood: 42000,
			},
			want: core.Profile{Food: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProfile(summaryFor(tt.amounts))
			if got != tt.want {
				t.Errorf("NormalizeProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Every dimension stays in [0,100], and the all-zero profile appears
// exactly when the four-category sub-total is zero.
func TestNormalizeProfile_Bounds(t *testing.T) {
	cases := []map[core.Category]int64{
		{core.CategoryFood: 1},
		{core.CategoryFood: 1, core.CategoryLeisure: 999999999},
		{core.CategoryTransport: 3, core.CategoryTelecom: 7},
		{core.CategoryHousing: 12345},
		{},
	}

	for _, amounts := range cases {
		var subTotal int64
		for _, cat := range core.ProfileCategories() {
			subTotal += amounts[cat]
		}

		p := NormalizeProfile(summaryFor(amounts))
		for i, v := range p.Dimensions() {
			if v < 0 || v > 100 {
				t.Errorf("dimension %d out of bounds: %d (input %v)", i, v, amounts)
			}
		}
		if (subTotal == 0) != p.IsZero() {
			t.Errorf("zero-profile iff zero sub-total violated: subTotal=%d profile=%+v", subTotal, p)
		}
	}
}
