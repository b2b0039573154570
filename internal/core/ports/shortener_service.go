package ports

import (
	"context"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

// ProcessResult is returned after a video submission has been "processed":
// a persisted video record plus its generated clip suggestions.
type ProcessResult struct {
	Video domain.Video  `json:"video"`
	Clips []domain.Clip `json:"clips"`
}

// ShortenerService implements the mock clip-generation use cases. All
// operations run under an authenticated user's identity.
type ShortenerService interface {
	ProcessYouTube(ctx context.Context, userID int64, url string) (*ProcessResult, error)
	ProcessUpload(ctx context.Context, userID int64, filename string) (*ProcessResult, error)
	ListVideos(ctx context.Context, userID int64) ([]domain.ProcessedVideo, error)
}
