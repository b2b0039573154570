package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextSequence atomically reserves n consecutive ids from the named counter
// and returns the first of them. The API exposes small numeric ids, so ids
// come from a counters document rather than ObjectIDs.
func nextSequence(ctx context.Context, db *mongo.Database, name string, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("next sequence: n must be positive, got %d", n)
	}

	var doc struct {
		Seq int64 `bson:"seq"`
	}

	err := db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": n}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}

	return doc.Seq - n + 1, nil
}
