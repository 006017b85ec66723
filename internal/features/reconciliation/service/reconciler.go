package service

import (
	"fmt"
	"io"

	"dockyard/internal/features/reconciliation/domain"
	"dockyard/internal/features/reconciliation/ports"
)

// Reconciler runs the three reconciliation workflows from raw inputs to CSV.
type Reconciler struct {
	source ports.Source
	render ports.Renderer
}

// NewReconciler creates a new Reconciler.
func NewReconciler(source ports.Source, render ports.Renderer) *Reconciler {
	return &Reconciler{source: source, render: render}
}

// Gmap compares a GMAP allocation export against a scale on-hand export.
func (r *Reconciler) Gmap(gmap, scale io.Reader) (string, error) {
	g, err := r.source.ReadGmap(gmap)
	if err != nil {
		return "", fmt.Errorf("failed to read gmap: %w", err)
	}
	s, err := r.source.ReadScale(scale)
	if err != nil {
		return "", fmt.Errorf("failed to read scale: %w", err)
	}
	return r.render.GmapCompare(CompareGmap(g, s)), nil
}

// FixParts lists the item-master rows whose pack or pallet quantities
// disagree with the details export.
func (r *Reconciler) FixParts(details, master io.Reader) (string, error) {
	d, err := r.source.ReadItemDetails(details)
	if err != nil {
		return "", fmt.Errorf("failed to read item details: %w", err)
	}
	m, err := r.source.ReadItemMaster(master)
	if err != nil {
		return "", fmt.Errorf("failed to read item master: %w", err)
	}
	return r.render.ItemMaster(CompareItemMaster(m, d)), nil
}

// Items builds item-master upload rows from the items spreadsheet.
func (r *Reconciler) Items(items io.Reader) (string, error) {
	in, err := r.source.ReadItems(items)
	if err != nil {
		return "", fmt.Errorf("failed to read items: %w", err)
	}
	filtered := FilterPrimaryLength(in)
	rows := make([]domain.ItemMaster, len(filtered))
	for i, it := range filtered {
		rows[i] = it.Master()
	}
	return r.render.ItemMaster(rows), nil
}
