// FILE: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
func (r *mongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on the internal slot id.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Unique index on slot_number; this is the coordination key between
		// real and virtual slots, so duplicates must be impossible.
		{
			Keys:    bson.D{{Key: "slot_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slot_number"),
		},
		// Compound index for room and date (primary admin query pattern).
		{
			Keys:    bson.D{{Key: "room_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("room_date_idx"),
		},
		// Range queries over the occupied interval.
		{
			Keys:    bson.D{{Key: "start_at", Value: 1}, {Key: "room_available_at", Value: 1}},
			Options: options.Index().SetName("start_available_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
