// File: database/repository/room/interface.go
package roomRepo

import (
	"context"
	"errors"

	"roomquest/database"
	"roomquest/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRoomNotFound is returned when a room id does not match any record.
// Lookups fail loudly; callers must never treat a missing room as a default.
var ErrRoomNotFound = errors.New("room not found")

type RoomRepository interface {
	FindByID(ctx context.Context, id string) (*models.Room, error)
	FindByLocation(ctx context.Context, locationID string) ([]models.Room, error)
	Create(ctx context.Context, room *models.Room) error
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database("roomquest")
	return &mongoRoomRepo{
		coll: db.Collection("rooms"),
	}
}
