// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"roomquest/models"
)

// FindForLocationInDateRange returns schedules for a location whose validity
// window intersects [fromDate, toDate]. Open-ended windows (empty valid_from
// or valid_until) always intersect on the open side.
func (r *mongoScheduleRepo) FindForLocationInDateRange(ctx context.Context, locationID, fromDate, toDate string) ([]models.RecurringSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location_id": locationID,
		"$and": []bson.M{
			{"$or": []bson.M{
				{"valid_from": bson.M{"$exists": false}},
				{"valid_from": ""},
				{"valid_from": bson.M{"$lte": toDate}},
			}},
			{"$or": []bson.M{
				{"valid_until": bson.M{"$exists": false}},
				{"valid_until": ""},
				{"valid_until": bson.M{"$gte": fromDate}},
			}},
		},
	}

	cursor, err := r.schedules.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules for location %s: %w", locationID, err)
	}
	defer cursor.Close(ctx)

	var schedules []models.RecurringSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) Create(ctx context.Context, schedule *models.RecurringSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	_, err := r.schedules.InsertOne(ctx, schedule)
	return err
}

func (r *mongoScheduleRepo) FindErasers(ctx context.Context, roomID, date string) ([]models.ScheduleEraser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.erasers.Find(ctx, bson.M{"room_id": roomID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch erasers for room %s on %s: %w", roomID, date, err)
	}
	defer cursor.Close(ctx)

	var erasers []models.ScheduleEraser
	if err := cursor.All(ctx, &erasers); err != nil {
		return nil, fmt.Errorf("error decoding erasers: %w", err)
	}
	return erasers, nil
}

func (r *mongoScheduleRepo) CreateEraser(ctx context.Context, eraser *models.ScheduleEraser) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if eraser.ID == "" {
		eraser.ID = uuid.New().String()
	}
	_, err := r.erasers.InsertOne(ctx, eraser)
	return err
}
