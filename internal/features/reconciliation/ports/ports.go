package ports

import (
	"io"

	"dockyard/internal/features/reconciliation/domain"
)

// Source parses the reconciliation inputs.
type Source interface {
	ReadGmap(r io.Reader) ([]domain.GmapItem, error)
	ReadScale(r io.Reader) ([]domain.ScaleItem, error)
	ReadItemDetails(r io.Reader) ([]domain.ItemDetails, error)
	ReadItemMaster(r io.Reader) ([]domain.ItemMaster, error)
	ReadItems(r io.Reader) ([]domain.Item, error)
}

// Renderer writes reconciliation results in the warehouse flat-file layouts.
type Renderer interface {
	GmapCompare(rows []domain.ItemCompare) string
	ItemMaster(rows []domain.ItemMaster) string
}

// Reconciler defines the primary port for the reconciliation workflows.
type Reconciler interface {
	Gmap(gmap, scale io.Reader) (string, error)
	FixParts(details, master io.Reader) (string, error)
	Items(items io.Reader) (string, error)
}
