package service

import (
	"dockyard/internal/core/ordered"
	"dockyard/internal/features/reconciliation/domain"

	"go.uber.org/zap"
)

const defaultPalletHeight = 5.0

// FilterPackPallet drops detail rows without a carton quantity and rows that
// are single carton, single pallet.
func FilterPackPallet(items []domain.ItemDetails) []domain.ItemDetails {
	out := make([]domain.ItemDetails, 0, len(items))
	for _, it := range items {
		switch {
		case it.CtnQty == 1 && it.PalQty == 1:
			dropped(ReasonEachOnly, zap.String("item", it.Item))
		case it.CtnQty == 0:
			dropped(ReasonNoCarton, zap.String("item", it.Item))
		default:
			out = append(out, it)
		}
	}
	return out
}

// IndexItemDetails filters the details and keys them by item. Only the first
// row of a repeated item is kept.
func IndexItemDetails(items []domain.ItemDetails) ordered.Map[string, domain.ItemDetails] {
	return MergeByKey(FilterPackPallet(items), func(d domain.ItemDetails) string { return d.Item },
		func(existing, in domain.ItemDetails) domain.ItemDetails {
			dropped(ReasonDuplicate, zap.String("item", in.Item))
			return existing
		})
}

// CompareItemMaster returns the master rows whose pack or pallet quantity
// disagrees with the details, carrying the details' quantities. Master parts
// missing from the details are logged and left out.
func CompareItemMaster(master []domain.ItemMaster, details []domain.ItemDetails) []domain.ItemMaster {
	index := IndexItemDetails(details)

	var out []domain.ItemMaster
	for _, m := range master {
		d, ok := index.Get(m.Part)
		if !ok {
			dropped(ReasonUnmatched, zap.String("part", m.Part))
			continue
		}
		if d.CtnQty == m.StdPk && d.PalQty == m.PalQty {
			continue
		}
		m.StdPk = d.CtnQty
		m.PalQty = d.PalQty
		out = append(out, m)
	}
	return out
}

func isValue(p *float64, v float64) bool {
	return p != nil && *p == v
}

// FilterPrimaryLength prepares spreadsheet items for an item-master upload:
//   - rows with a zero primary length, or any 1-inch primary dimension, are dropped;
//   - zero secondary length and width fall back to the primary ones, and a zero
//     secondary height becomes the default pallet height;
//   - only the first row of a repeated part is kept, with its plant cleared.
func FilterPrimaryLength(items []domain.Item) []domain.Item {
	kept := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if isValue(it.PrimaryLength, 0) ||
			isValue(it.PrimaryLength, 1) || isValue(it.PrimaryHeight, 1) || isValue(it.PrimaryWidth, 1) {
			dropped(ReasonDimensionless, zap.String("part", it.Part))
			continue
		}
		if isValue(it.SecondaryLength, 0) {
			it.SecondaryLength = it.PrimaryLength
		}
		if isValue(it.SecondaryWidth, 0) {
			it.SecondaryWidth = it.PrimaryWidth
		}
		if isValue(it.SecondaryHeight, 0) {
			h := defaultPalletHeight
			it.SecondaryHeight = &h
		}
		kept = append(kept, it)
	}

	repeated := make(map[string]bool)
	m := MergeByKey(kept, func(it domain.Item) string { return it.Part },
		func(existing, in domain.Item) domain.Item {
			repeated[in.Part] = true
			dropped(ReasonDuplicate, zap.String("part", in.Part))
			return existing
		})

	out := m.Values()
	for i := range out {
		if repeated[out[i].Part] {
			out[i].Plant = ""
		}
	}
	return out
}
