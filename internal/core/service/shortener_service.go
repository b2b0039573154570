package service

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clipforge/clip-shortener/internal/core/domain"
	"github.com/clipforge/clip-shortener/internal/core/ports"
)

// youtubeURLPattern mirrors the client-side check: youtube.com or youtu.be
// with any path. Nothing is ever fetched from the URL.
var youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

// ResultCache replays a previous processing result for a repeated submission
// of the same URL by the same user. A miss is (nil, nil).
type ResultCache interface {
	Get(ctx context.Context, userID int64, url string) (*ports.ProcessResult, error)
	Set(ctx context.Context, userID int64, url string, result *ports.ProcessResult) error
}

// ShortenerService generates mock clips for submitted videos. Clip
// boundaries and copy come from random sampling, not from the media.
type ShortenerService struct {
	repo  ports.VideoRepository
	cache ResultCache
	gen   *clipGenerator
	log   zerolog.Logger
}

func NewShortenerService(repo ports.VideoRepository, cache ResultCache, log zerolog.Logger) *ShortenerService {
	return &ShortenerService{
		repo:  repo,
		cache: cache,
		gen:   newClipGenerator(time.Now().UnixNano()),
		log:   log,
	}
}

// ProcessYouTube validates the URL, fabricates a video with clips and
// persists them under the caller's identity. A repeated submission of the
// same URL within the cache TTL replays the original result; cache failures
// are non-fatal and only logged.
func (s *ShortenerService) ProcessYouTube(ctx context.Context, userID int64, url string) (*ports.ProcessResult, error) {
	url = strings.TrimSpace(url)
	if !youtubeURLPattern.MatchString(url) {
		return nil, domain.NewValidationError("Please provide a valid YouTube URL")
	}

	cached, err := s.cache.Get(ctx, userID, url)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("result cache lookup failed, processing anyway")
	} else if cached != nil {
		s.log.Debug().Int64("user_id", userID).Int64("video_id", cached.Video.ID).Msg("replaying cached result")
		return cached, nil
	}

	title, duration := s.gen.video()
	video := &domain.Video{
		OwnerID:   userID,
		Title:     title,
		Source:    domain.SourceYouTube,
		SourceURL: url,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}

	result, err := s.persist(ctx, video)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, userID, url, result); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to cache processing result")
	}
	return result, nil
}

// ProcessUpload fabricates a video with clips for an already-stored upload.
// The title is derived from the original file name.
func (s *ShortenerService) ProcessUpload(ctx context.Context, userID int64, filename string) (*ports.ProcessResult, error) {
	if filename == "" {
		return nil, domain.NewValidationError("Video file is required")
	}

	_, duration := s.gen.video()
	video := &domain.Video{
		OwnerID:   userID,
		Title:     uploadTitle(filename),
		Source:    domain.SourceUpload,
		Filename:  filename,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}

	return s.persist(ctx, video)
}

// ListVideos returns the caller's processed videos with clips, newest first.
func (s *ShortenerService) ListVideos(ctx context.Context, userID int64) ([]domain.ProcessedVideo, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *ShortenerService) persist(ctx context.Context, video *domain.Video) (*ports.ProcessResult, error) {
	clips := s.gen.clips(video.Duration, clipsPerVideo)

	created, createdClips, err := s.repo.Create(ctx, video, clips)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", video.OwnerID).Msg("failed to persist processed video")
		return nil, err
	}

	s.log.Info().
		Int64("video_id", created.ID).
		Int64("user_id", created.OwnerID).
		Str("source", created.Source).
		Int("clips", len(createdClips)).
		Msg("video processed")

	return &ports.ProcessResult{Video: *created, Clips: createdClips}, nil
}

// uploadTitle strips the extension from the stored file name.
func uploadTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
