// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"log"
	"time"

	"roomquest/database"
	"roomquest/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository is the persistent store for slot records. Slots are keyed by
// an internal id but addressed externally through the unique slot_number
// index; FindBySlotNumber returning nil (with a nil error) means no record
// exists, which the resolver treats as "maybe virtual", not as a failure.
type SlotRepository interface {
	FindBySlotNumber(ctx context.Context, slotNumber string) (*models.Slot, error)
	FindByID(ctx context.Context, id string) (*models.Slot, error)
	FindByLocationAndDate(ctx context.Context, locationID, date string) ([]models.Slot, error)
	FindActiveInRange(ctx context.Context, from, to time.Time) ([]models.Slot, error)
	Create(ctx context.Context, slot *models.Slot) error
	Update(ctx context.Context, slot *models.Slot) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository and ensures its
// indexes. The unique slot_number index must exist before any writes happen.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database("roomquest")
	repo := &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("failed to ensure slot indexes: %v", err)
	}
	return repo
}
