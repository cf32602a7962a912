// File: database/repository/block/interface.go
package blockRepo

import (
	"context"
	"errors"

	"roomquest/database"
	"roomquest/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBlockNotFound is returned when a block id does not match any record.
var ErrBlockNotFound = errors.New("block not found")

type BlockRepository interface {
	Create(ctx context.Context, block *models.Block) error
	Delete(ctx context.Context, blockID string) (*models.Block, error)
	FindBySlotID(ctx context.Context, slotID string) ([]models.Block, error)
	SumParticipantsForSlot(ctx context.Context, slotID string) (int, error)
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database("roomquest")
	return &mongoBlockRepo{
		coll: db.Collection("blocks"),
	}
}
