package ports

import "context"

// ExportService defines the primary port for the CSV exports.
type ExportService interface {
	Load(ctx context.Context, trailerID string) (string, error)
	Daily(ctx context.Context, date string) (string, error)
	Schedule(ctx context.Context, date string) (string, error)
	Recent() string
	LinesTemplate() string
}
