package service

import (
	"context"
	"fmt"

	dockports "dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"
)

// Snapshotter exposes the current application state.
type Snapshotter interface {
	Snapshot() state.State
}

// ExportService renders the dock exports. Data is fetched through the trailer
// service so the store sees the same refresh a listing would cause.
type ExportService struct {
	trailers dockports.TrailerService
	store    Snapshotter
	format   *Formatter
}

// NewExportService creates a new ExportService.
func NewExportService(trailers dockports.TrailerService, store Snapshotter, format *Formatter) *ExportService {
	return &ExportService{trailers: trailers, store: store, format: format}
}

// Load renders the SID export for one trailer.
func (s *ExportService) Load(ctx context.Context, trailerID string) (string, error) {
	loads, err := s.trailers.LoadDetails(ctx, trailerID)
	if err != nil {
		return "", fmt.Errorf("failed to load trailer %s: %w", trailerID, err)
	}
	return s.format.Load(trailerID, loads), nil
}

// Daily renders the SID export for every trailer of date.
func (s *ExportService) Daily(ctx context.Context, date string) (string, error) {
	loads, err := s.trailers.DailyLoads(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to load daily SIDs: %w", err)
	}
	return s.format.Daily(loads), nil
}

// Schedule refreshes the day's trailers and renders the schedule export.
func (s *ExportService) Schedule(ctx context.Context, date string) (string, error) {
	trailers, err := s.trailers.LoadToday(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to load schedule: %w", err)
	}
	return s.format.Schedule(trailers), nil
}

// Recent renders the recent-trailers list held by the store.
func (s *ExportService) Recent() string {
	return s.format.Recent(s.store.Snapshot().Recent.Values())
}

// LinesTemplate returns the shipment-lines upload template.
func (s *ExportService) LinesTemplate() string {
	return s.format.LinesTemplate()
}
