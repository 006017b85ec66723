package service

import (
	"testing"

	"dockyard/internal/features/reconciliation/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestFilterPackPallet(t *testing.T) {
	got := FilterPackPallet([]domain.ItemDetails{
		{Item: "EACH", CtnQty: 1, PalQty: 1},
		{Item: "NONE", CtnQty: 0, PalQty: 4},
		{Item: "KEEP", CtnQty: 5, PalQty: 3},
	})
	assert.Equal(t, []domain.ItemDetails{{Item: "KEEP", CtnQty: 5, PalQty: 3}}, got)
}

func TestCompareItemMaster(t *testing.T) {
	master := []domain.ItemMaster{
		{Part: "SAME", StdPk: 5, PalQty: 3},
		{Part: "DIFF", Desc: "bracket", StdPk: 5, PalQty: 3},
		{Part: "GONE", StdPk: 1, PalQty: 1},
	}
	details := []domain.ItemDetails{
		{Item: "SAME", CtnQty: 5, PalQty: 3},
		{Item: "DIFF", CtnQty: 10, PalQty: 4},
		{Item: "DIFF", CtnQty: 99, PalQty: 99},
	}

	got := CompareItemMaster(master, details)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ItemMaster{Part: "DIFF", Desc: "bracket", StdPk: 10, PalQty: 4}, got[0])
}

func TestFilterPrimaryLength(t *testing.T) {
	items := []domain.Item{
		{Part: "ZERO", PrimaryLength: f64(0)},
		{Part: "INCH", PrimaryLength: f64(12), PrimaryWidth: f64(1)},
		{Part: "A", Plant: "AR", PrimaryLength: f64(12), PrimaryWidth: f64(8),
			SecondaryLength: f64(0), SecondaryWidth: f64(0), SecondaryHeight: f64(0)},
		{Part: "B", Plant: "FF", PrimaryLength: f64(20)},
		{Part: "B", Plant: "AR", PrimaryLength: f64(30)},
	}

	got := FilterPrimaryLength(items)
	require.Len(t, got, 2)

	a := got[0]
	assert.Equal(t, "A", a.Part)
	assert.Equal(t, "AR", a.Plant)
	assert.Equal(t, 12.0, *a.SecondaryLength)
	assert.Equal(t, 8.0, *a.SecondaryWidth)
	assert.Equal(t, 5.0, *a.SecondaryHeight)

	b := got[1]
	assert.Equal(t, "B", b.Part)
	assert.Equal(t, "", b.Plant)
	assert.Equal(t, 20.0, *b.PrimaryLength)
}
