package service

import (
	"context"
	"io"

	"dockyard/internal/features/dock/ports"
)

// UploadService forwards raw CSV files to the ingestion service.
type UploadService struct {
	uploader ports.Uploader
	store    ports.StateStore
}

// NewUploadService creates a new UploadService.
func NewUploadService(u ports.Uploader, store ports.StateStore) *UploadService {
	return &UploadService{uploader: u, store: store}
}

// Upload sends the file as-is under the current user's token.
func (s *UploadService) Upload(ctx context.Context, filename string, r io.Reader) error {
	u, err := authorize(s.store, false)
	if err != nil {
		return err
	}
	if err := s.uploader.Upload(ctx, u.Token, filename, r); err != nil {
		return apiError(ctx, s.store, "upload", err)
	}
	return nil
}
