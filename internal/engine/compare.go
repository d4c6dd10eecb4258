package engine

import (
	"math"

	"sobi/internal/catalog"
	"sobi/internal/core"
)

// DisplayUnit converts raw KRW amounts to the coarse unit shown in
// comparison charts (만원, ten thousand KRW).
const DisplayUnit = 10000

// ComparePeers builds the six comparison rows for one category: the user's
// own spend followed by the five demographic group averages, in fixed order
// (self, gender, age, region, occupation, income). Consumers index row 0 as
// "self", so the order is part of the contract. Group values missing from
// the lookup tables read as 0; that is expected sparse survey data, never
// an error.
func ComparePeers(
	cat core.Category,
	sel core.DemographicSelections,
	totals map[core.Category]int64,
	tables *catalog.PeerTables,
) []core.PeerComparisonRow {
	self := int64(math.Round(float64(totals[cat]) / DisplayUnit))

	rows := make([]core.PeerComparisonRow, 0, 6)
	rows = append(rows, core.PeerComparisonRow{Group: core.GroupSelf, Label: "나", Value: self})

	dims := []struct {
		group core.PeerGroup
		value string
	}{
		{core.GroupGender, sel.Gender},
		{core.GroupAge, sel.Age},
		{core.GroupRegion, sel.Region},
		{core.GroupOccupation, sel.Occupation},
		{core.GroupIncome, sel.Income},
	}
	for _, d := range dims {
		rows = append(rows, core.PeerComparisonRow{
			Group: d.group,
			Label: catalog.SelectionLabel(d.group, d.value),
			Value: tables.Lookup(d.group, d.value, cat),
		})
	}

	return rows
}

// NarrateComparison derives, for each non-self row, how the user's spend
// relates to the group average as a percentage. A group value of zero means
// there is no survey data for that combination: the row is narrated with
// HasData=false and no division takes place.
func NarrateComparison(rows []core.PeerComparisonRow) []core.ComparisonNarration {
	if len(rows) == 0 {
		return nil
	}

	self := rows[0].Value
	out := make([]core.ComparisonNarration, 0, len(rows)-1)
	for _, row := range rows[1:] {
		n := core.ComparisonNarration{Group: row.Group, Label: row.Label}
		if row.Value != 0 {
			n.HasData = true
			n.DiffPercent = float64(self-row.Value) / float64(row.Value) * 100
			n.Higher = self > row.Value
		}
		out = append(out, n)
	}
	return out
}
