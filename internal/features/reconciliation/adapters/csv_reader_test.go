package adapters

import (
	"strings"
	"testing"

	"dockyard/internal/features/reconciliation/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGmap(t *testing.T) {
	in := "Part,Part Name,Plant,Plant DOH,ASL Qty,In Transit ASL to Plant\n" +
		"P1,Bracket,AR,3,10,2\n" +
		"P2,Clip,FF,,6,\n"

	items, err := ReadGmap(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []domain.GmapItem{
		{Part: "P1", PartName: "Bracket", Plant: "AR", PlantDOH: "3", ASLQty: 10, InTransit: 2},
		{Part: "P2", PartName: "Clip", Plant: "FF", ASLQty: 6},
	}, items)
}

func TestReadGmap_LeadingZerosAreDecimal(t *testing.T) {
	in := "part,part_name,plant,plant_doh,asl_qty,in_transit_asl_to_plant\n" +
		"P1,Bolt,AR,3,010,0\n" +
		"P2,Nut,FF,5,08,0\n"

	items, err := ReadGmap(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 10, items[0].ASLQty)
	assert.Equal(t, 8, items[1].ASLQty)
}

func TestReadItems_LeadingZeroFloat(t *testing.T) {
	in := "part,std_pk,primary_length_in\n" +
		"A1,007,012.50\n"

	items, err := ReadItems(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].StdPk)
	require.NotNil(t, items[0].PrimaryLength)
	assert.Equal(t, 12.5, *items[0].PrimaryLength)
}

func TestReadItemMaster_QuotesInsideFields(t *testing.T) {
	in := "part,desc,class,std_pk\n" +
		"P1,Bolt,2STACK-SM,4\n" +
		"P2,12\" HOSE,2STACK-SM,6\n" +
		"P3,Clamp,3STACK-SM,8\n"

	items, err := ReadItemMaster(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "12\" HOSE", items[1].Desc)
	assert.Equal(t, 6, items[1].StdPk)
	assert.Equal(t, "P3", items[2].Part)
}

func TestReadScale_SkipsMalformedRows(t *testing.T) {
	in := "item,location,oh_quantity,al_quantity,av_quantity\n" +
		"P1,010-A-010,4,0,0\n" +
		"P2,001-B-001,many,0,0\n" +
		"P3,001-B-002,7,1,6\n"

	items, err := ReadScale(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.MissingLocation, items[0].Location)
	assert.Equal(t, "P3", items[1].Item)
	assert.Equal(t, 6, items[1].AVQuantity)
}

func TestReadItems_BlankCellsAreNil(t *testing.T) {
	in := "part,part_name,plant,warehouse_stack,std_pk,primary_length_in,secondary_height_in\n" +
		"A1,Panel,AR,2,10,12.5,\n"

	items, err := ReadItems(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	require.NotNil(t, it.WarehouseStack)
	assert.Equal(t, 2, *it.WarehouseStack)
	require.NotNil(t, it.PrimaryLength)
	assert.Equal(t, 12.5, *it.PrimaryLength)
	assert.Nil(t, it.SecondaryHeight)
	assert.Nil(t, it.PalletWeight)
}

func TestReadItemMaster_ShortRecord(t *testing.T) {
	in := "part,desc,class,location,wide,size,std_pk,pri_len\n" +
		"M1,Bolt,2STACK-SM,ARLINGTON\n"

	items, err := ReadItemMaster(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ARLINGTON", items[0].Location)
	assert.Zero(t, items[0].StdPk)
}

func TestRead_Empty(t *testing.T) {
	_, err := ReadItemDetails(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}
