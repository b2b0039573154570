package ports

import (
	"context"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

// VideoRepository defines persistence operations for processed videos and
// their generated clips.
type VideoRepository interface {
	// Create persists the video and its clips, assigning identifiers to all
	// of them. The returned values carry the assigned ids.
	Create(ctx context.Context, video *domain.Video, clips []domain.Clip) (*domain.Video, []domain.Clip, error)
	// ListByOwner returns the owner's videos with their clips, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.ProcessedVideo, error)
}
