// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"roomquest/database"
	"roomquest/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores the recurring schedules the calendar service
// expands into virtual slots, plus the erasers that suppress them for
// individual dates.
type ScheduleRepository interface {
	FindForLocationInDateRange(ctx context.Context, locationID, fromDate, toDate string) ([]models.RecurringSchedule, error)
	Create(ctx context.Context, schedule *models.RecurringSchedule) error
	FindErasers(ctx context.Context, roomID, date string) ([]models.ScheduleEraser, error)
	CreateEraser(ctx context.Context, eraser *models.ScheduleEraser) error
}

type mongoScheduleRepo struct {
	schedules *mongo.Collection
	erasers   *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("roomquest")
	return &mongoScheduleRepo{
		schedules: db.Collection("recurring_schedules"),
		erasers:   db.Collection("schedule_erasers"),
	}
}
