// File: database/repository/block/crud.go
package blockRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomquest/models"
)

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.Block) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.BlockID == "" {
		block.BlockID = uuid.New().String()
	}
	block.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("error creating block for slot %s: %w", block.SlotNumber, err)
	}
	return nil
}

func (r *mongoBlockRepo) Delete(ctx context.Context, blockID string) (*models.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.Block
	err := r.coll.FindOneAndDelete(ctx, bson.M{"block_id": blockID}).Decode(&block)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, blockID)
		}
		return nil, fmt.Errorf("error deleting block %s: %w", blockID, err)
	}
	return &block, nil
}

func (r *mongoBlockRepo) FindBySlotID(ctx context.Context, slotID string) ([]models.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"slot_id": slotID})
	if err != nil {
		return nil, fmt.Errorf("error fetching blocks for slot %s: %w", slotID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.Block
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocks: %w", err)
	}
	return blocks, nil
}

// SumParticipantsForSlot totals the blocked headcount across all blocks on a
// slot using an aggregation pipeline.
func (r *mongoBlockRepo) SumParticipantsForSlot(ctx context.Context, slotID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"slot_id": slotID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$participants"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating blocks for slot %s: %w", slotID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding block totals: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
