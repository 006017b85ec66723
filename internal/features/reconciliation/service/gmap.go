package service

import (
	"strings"

	"dockyard/internal/core/ordered"
	"dockyard/internal/features/reconciliation/domain"

	"go.uber.org/zap"
)

// MergeGmap collapses GMAP rows by part. A row for a plant not yet listed
// appends its plant and plant DOH and adds its ASL quantity; a row whose plant
// is already listed is a repeat and contributes nothing.
func MergeGmap(items []domain.GmapItem) []domain.GmapItem {
	m := MergeByKey(items, func(g domain.GmapItem) string { return g.Part },
		func(existing, in domain.GmapItem) domain.GmapItem {
			if strings.Contains(existing.Plant, in.Plant) {
				dropped(ReasonDuplicate, zap.String("part", in.Part), zap.String("plant", in.Plant))
				return existing
			}
			existing.Plant += " " + in.Plant
			existing.PlantDOH += " " + in.PlantDOH
			existing.ASLQty += in.ASLQty
			return existing
		})
	return m.Values()
}

// MergeScale totals scale rows by item. Stock in the missing-location bin is
// tracked apart from on-hand and allocated stock.
func MergeScale(items []domain.ScaleItem) ordered.Map[string, domain.ScaleTotals] {
	var m ordered.Map[string, domain.ScaleTotals]
	for i, it := range items {
		if it.Item == "" {
			dropped(ReasonEmptyKey, zap.Int("row", i))
			continue
		}
		missing := it.Location == domain.MissingLocation

		t, ok := m.Get(it.Item)
		switch {
		case !ok && missing:
			t = domain.ScaleTotals{Item: it.Item, MissingQuantity: it.OHQuantity}
		case !ok:
			t = domain.ScaleTotals{
				Item:       it.Item,
				OHQuantity: it.OHQuantity,
				ALQuantity: it.ALQuantity,
				AVQuantity: it.AVQuantity,
			}
		case missing:
			t.MissingQuantity += it.OHQuantity
		default:
			t.OHQuantity += it.OHQuantity
			t.ALQuantity += it.ALQuantity
		}
		m.Set(it.Item, t)
	}
	return m
}

// CompareGmap diffs merged GMAP allocations against scale counts, one row per
// GMAP part. Dif is scale on-hand minus GMAP quantity, so a part the scale
// system has never seen reports the full GMAP quantity as negative.
func CompareGmap(gmap []domain.GmapItem, scale []domain.ScaleItem) []domain.ItemCompare {
	merged := MergeGmap(gmap)
	totals := MergeScale(scale)

	rows := make([]domain.ItemCompare, 0, len(merged))
	for _, g := range merged {
		row := domain.ItemCompare{
			Part:        g.Part,
			ASLQuantity: g.ASLQty,
			InTransit:   g.InTransit,
			Plant:       g.Plant,
			PlantDOH:    g.PlantDOH,
		}
		if s, ok := totals.Get(g.Part); ok {
			row.ScaleOHQuantity = s.OHQuantity
			row.ScaleALQuantity = s.ALQuantity
			row.ScaleMissingQuantity = s.MissingQuantity
			row.ScaleActualQuantity = s.OHQuantity
		} else {
			dropped(ReasonUnmatched, zap.String("part", g.Part))
		}
		row.Dif = row.ScaleActualQuantity - row.ASLQuantity
		rows = append(rows, row)
	}
	return rows
}
