package domain

import "fmt"

// PalletSize classes a pallet by its length in inches.
func PalletSize(length float64) string {
	switch {
	case length >= 40 && length <= 49.99:
		return "MD"
	case length >= 50:
		return "LG"
	default:
		return "SM"
	}
}

// PalletWide classes a pallet by its width in inches. Widths in the gaps
// between bands, and negative widths, have no class.
func PalletWide(width float64) string {
	switch {
	case width >= 0 && width <= 48:
		return "1 WIDE"
	case width >= 48.01 && width <= 86:
		return "2 WIDE"
	case width >= 86.01:
		return "3 WIDE"
	default:
		return ""
	}
}

// PalletClass combines the stack height with the size class, e.g. "2STACK-LG".
func PalletClass(stack int, length float64) string {
	return fmt.Sprintf("%dSTACK-%s", stack, PalletSize(length))
}

// PlantName expands a plant code. Unknown or blank codes mean the part ships to several plants.
func PlantName(code string) string {
	switch code {
	case "AR":
		return "ARLINGTON"
	case "FF":
		return "FAIRFAX"
	case "40":
		return "SPRING HILL"
	default:
		return "MULTI"
	}
}

func orZero[T int | float64](p *T) T {
	if p == nil {
		return 0
	}
	return *p
}

// Master converts a spreadsheet item into an item-master row. Pallet
// dimensions come from the secondary container; blank cells count as zero.
func (it Item) Master() ItemMaster {
	palLen := orZero(it.SecondaryLength)
	return ItemMaster{
		Part:     it.Part,
		Desc:     it.PartName,
		Class:    PalletClass(orZero(it.WarehouseStack), palLen),
		Location: PlantName(it.Plant),
		Wide:     PalletWide(orZero(it.SecondaryWidth)),
		Size:     PalletSize(palLen),
		StdPk:    it.StdPk,
		PriLen:   orZero(it.PrimaryLength),
		PriWid:   orZero(it.PrimaryWidth),
		PriHei:   orZero(it.PrimaryHeight),
		PriWt:    orZero(it.PrimaryWeight),
		PalQty:   orZero(it.PiecesPerPallet),
		PalLen:   palLen,
		PalWid:   orZero(it.SecondaryWidth),
		PalHei:   orZero(it.SecondaryHeight),
		PalWt:    orZero(it.PalletWeight),
	}
}
