// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"roomquest/models"
)

func (r *mongoSlotRepo) FindByLocationAndDate(ctx context.Context, locationID, date string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location_id": locationID,
		"date":        date,
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for location %s on %s: %w", locationID, date, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	for i := range slots {
		slots[i].Exists = true
	}
	return slots, nil
}

// FindActiveInRange returns slots whose occupied interval
// [start_at, room_available_at] overlaps [from, to].
func (r *mongoSlotRepo) FindActiveInRange(ctx context.Context, from, to time.Time) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"start_at":          bson.M{"$lte": to},
		"room_available_at": bson.M{"$gte": from},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	for i := range slots {
		slots[i].Exists = true
	}
	return slots, nil
}
