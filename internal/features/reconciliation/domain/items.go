// Package domain holds the transient record types of the inventory
// reconciliation workflows. Rows are keyed by part number and never persisted.
package domain

// MissingLocation is the scale-system bin that collects unaccounted stock.
const MissingLocation = "010-A-010"

// GmapItem is one row of the GMAP/ASL allocation feed.
type GmapItem struct {
	Part      string `csv:"part"`
	PartName  string `csv:"part_name"`
	Plant     string `csv:"plant"`
	PlantDOH  string `csv:"plant_doh"`
	ASLQty    int    `csv:"asl_qty"`
	InTransit int    `csv:"in_transit_asl_to_plant"`
}

// ScaleItem is one row of the scale-system on-hand count.
type ScaleItem struct {
	Item       string `csv:"item"`
	Location   string `csv:"location"`
	OHQuantity int    `csv:"oh_quantity"`
	ALQuantity int    `csv:"al_quantity"`
	AVQuantity int    `csv:"av_quantity"`
}

// ScaleTotals accumulates every scale row of one item.
type ScaleTotals struct {
	Item            string
	OHQuantity      int
	ALQuantity      int
	AVQuantity      int
	MissingQuantity int
}

// ItemCompare is one row of the GMAP against scale comparison.
type ItemCompare struct {
	Part                 string
	ScaleOHQuantity      int
	ScaleALQuantity      int
	ScaleMissingQuantity int
	ScaleActualQuantity  int
	ASLQuantity          int
	Dif                  int
	InTransit            int
	Plant                string
	PlantDOH             string
}

// ItemDetails is one row of the pack/pallet details feed.
type ItemDetails struct {
	Item   string `csv:"item"`
	CtnQty int    `csv:"ctn_qty"`
	PalQty int    `csv:"pal_qty"`
}

// ItemMaster is one row of the warehouse item master.
type ItemMaster struct {
	Part     string  `csv:"part"`
	Desc     string  `csv:"desc"`
	Class    string  `csv:"class"`
	Location string  `csv:"location"`
	Wide     string  `csv:"wide"`
	Size     string  `csv:"size"`
	StdPk    int     `csv:"std_pk"`
	PriLen   float64 `csv:"pri_len"`
	PriWid   float64 `csv:"pri_wid"`
	PriHei   float64 `csv:"pri_hei"`
	PriWt    float64 `csv:"pri_wt"`
	PalQty   int     `csv:"pal_qty"`
	PalLen   float64 `csv:"pal_len"`
	PalWid   float64 `csv:"pal_wid"`
	PalHei   float64 `csv:"pal_hei"`
	PalWt    float64 `csv:"pal_wt"`
}

// Item is one row of the items spreadsheet used to build item-master uploads.
// Pointer fields are nil when the cell was blank.
type Item struct {
	Part            string   `csv:"part"`
	PartName        string   `csv:"part_name"`
	Plant           string   `csv:"plant"`
	WarehouseStack  *int     `csv:"warehouse_stack"`
	StdPk           int      `csv:"std_pk"`
	PrimaryLength   *float64 `csv:"primary_length_in"`
	PrimaryWidth    *float64 `csv:"primary_width_in"`
	PrimaryHeight   *float64 `csv:"primary_height_in"`
	PrimaryWeight   *float64 `csv:"primary_container_weight_lbs"`
	PiecesPerPallet *int     `csv:"pieces_per_pallet"`
	SecondaryLength *float64 `csv:"secondary_length_in"`
	SecondaryWidth  *float64 `csv:"secondary_width_in"`
	SecondaryHeight *float64 `csv:"secondary_height_in"`
	PalletWeight    *float64 `csv:"pallet_weight"`
}
