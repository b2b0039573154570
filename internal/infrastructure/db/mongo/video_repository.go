package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

const (
	videosCollection = "videos"
	clipsCollection  = "clips"
	videoCounter     = "videos"
	clipCounter      = "clips"
)

type MongoVideoRepository struct {
	db     *mongo.Database
	videos *mongo.Collection
	clips  *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *MongoVideoRepository {
	return &MongoVideoRepository{
		db:     db,
		videos: db.Collection(videosCollection),
		clips:  db.Collection(clipsCollection),
	}
}

// Create persists a video together with its clips and assigns numeric ids to
// all of them. Clip ids are reserved as one contiguous block to keep the
// counter round-trips to two per submission.
func (r *MongoVideoRepository) Create(ctx context.Context, video *domain.Video, clips []domain.Clip) (*domain.Video, []domain.Clip, error) {
	videoID, err := nextSequence(ctx, r.db, videoCounter, 1)
	if err != nil {
		return nil, nil, err
	}

	stored := *video
	stored.ID = videoID

	if _, err := r.videos.InsertOne(ctx, stored); err != nil {
		return nil, nil, fmt.Errorf("insert video: %w", err)
	}

	if len(clips) == 0 {
		return &stored, nil, nil
	}

	firstClipID, err := nextSequence(ctx, r.db, clipCounter, int64(len(clips)))
	if err != nil {
		return nil, nil, err
	}

	storedClips := make([]domain.Clip, len(clips))
	docs := make([]any, len(clips))
	for i, clip := range clips {
		clip.ID = firstClipID + int64(i)
		clip.VideoID = videoID
		storedClips[i] = clip
		docs[i] = clip
	}

	if _, err := r.clips.InsertMany(ctx, docs); err != nil {
		return nil, nil, fmt.Errorf("insert clips: %w", err)
	}

	return &stored, storedClips, nil
}

// ListByOwner returns the owner's videos with their clips, newest first.
func (r *MongoVideoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.ProcessedVideo, error) {
	cursor, err := r.videos.Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find videos: %w", err)
	}
	defer cursor.Close(ctx)

	var videos []domain.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}

	out := make([]domain.ProcessedVideo, 0, len(videos))
	for _, video := range videos {
		clips, err := r.clipsForVideo(ctx, video.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ProcessedVideo{Video: video, Clips: clips})
	}
	return out, nil
}

func (r *MongoVideoRepository) clipsForVideo(ctx context.Context, videoID int64) ([]domain.Clip, error) {
	cursor, err := r.clips.Find(ctx,
		bson.M{"video_id": videoID},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find clips: %w", err)
	}
	defer cursor.Close(ctx)

	var clips []domain.Clip
	if err := cursor.All(ctx, &clips); err != nil {
		return nil, fmt.Errorf("decode clips: %w", err)
	}
	return clips, nil
}
