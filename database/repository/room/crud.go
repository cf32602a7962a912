// File: database/repository/room/crud.go
package roomRepo

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

func (r *mongoRoomRepo) FindByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
		}
		return nil, fmt.Errorf("error fetching room %s: %w", id, err)
	}
	return &room, nil
}

func (r *mongoRoomRepo) FindByLocation(ctx context.Context, locationID string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return nil, fmt.Errorf("error fetching rooms for location %s: %w", locationID, err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *mongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, room)
	return err
}
