// File: services/calendar/calendar.go
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	roomRepo "roomquest/database/repository/room"
	scheduleRepo "roomquest/database/repository/schedule"
	"roomquest/models"
	"roomquest/services/scheduling"
	"roomquest/utils"
)

// DefaultService implements scheduling.CalendarService. It owns the inverse
// of the slot-number format and expands recurring schedules into virtual slot
// candidates for a date, honoring schedule erasers.
type DefaultService struct {
	Schedules scheduleRepo.ScheduleRepository
	Rooms     roomRepo.RoomRepository
}

// NewDefaultService constructs the calendar service.
func NewDefaultService(schedules scheduleRepo.ScheduleRepository, rooms roomRepo.RoomRepository) *DefaultService {
	return &DefaultService{Schedules: schedules, Rooms: rooms}
}

// parseSlotNumber splits "YYMMDDHHmm-<locationID>-<roomID>" into its parts.
// Room ids may themselves contain dashes, so the split is bounded at three.
func parseSlotNumber(slotNumber string) (stamp, locationID, roomID string, err error) {
	parts := strings.SplitN(slotNumber, "-", 3)
	if len(parts) != 3 || len(parts[0]) != 10 {
		return "", "", "", fmt.Errorf("malformed slot number %q", slotNumber)
	}
	return parts[0], parts[1], parts[2], nil
}

// DateFromSlotNumber recovers the calendar date encoded in a slot number.
// The two-digit year is pinned to 20xx.
func (s *DefaultService) DateFromSlotNumber(slotNumber string) (time.Time, error) {
	stamp, _, _, err := parseSlotNumber(slotNumber)
	if err != nil {
		return time.Time{}, err
	}
	date, err := time.Parse("060102", stamp[:6])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date in slot number %q: %w", slotNumber, err)
	}
	return date, nil
}

// LocationIDFromSlotNumber recovers the location id encoded in a slot number.
func (s *DefaultService) LocationIDFromSlotNumber(slotNumber string) (string, error) {
	_, locationID, _, err := parseSlotNumber(slotNumber)
	return locationID, err
}

// VirtualSlotsForDate expands every recurring schedule covering the location
// and date into a virtual slot. Each candidate runs through the same
// derivation as a persisted slot, so a candidate's slot number is directly
// comparable to a requested one. Dates suppressed by a schedule eraser yield
// no candidate for that room.
func (s *DefaultService) VirtualSlotsForDate(ctx context.Context, locationID string, date time.Time) ([]models.Slot, error) {
	logger := utils.GetLogger()
	dateStr := date.Format("2006-01-02")

	schedules, err := s.Schedules.FindForLocationInDateRange(ctx, locationID, dateStr, dateStr)
	if err != nil {
		return nil, err
	}

	var slots []models.Slot
	for _, sched := range schedules {
		if !coversDate(sched, date, dateStr) {
			continue
		}

		erasers, err := s.Schedules.FindErasers(ctx, sched.RoomID, dateStr)
		if err != nil {
			return nil, err
		}
		if len(erasers) > 0 {
			continue
		}

		room, err := s.Rooms.FindByID(ctx, sched.RoomID)
		if err != nil {
			// A schedule pointing at a missing room is a data problem, but it
			// must not hide the rest of the day's slots.
			logger.Error("recurring schedule references unknown room",
				zap.String("scheduleID", sched.ID),
				zap.String("roomID", sched.RoomID),
				zap.Error(err))
			continue
		}

		slot, err := s.synthesize(room, sched, date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *slot)
	}
	return slots, nil
}

func coversDate(sched models.RecurringSchedule, date time.Time, dateStr string) bool {
	if int(date.Weekday()) != sched.Weekday {
		return false
	}
	if sched.ValidFrom != "" && dateStr < sched.ValidFrom {
		return false
	}
	if sched.ValidUntil != "" && dateStr > sched.ValidUntil {
		return false
	}
	return true
}

// synthesize builds one virtual slot from a schedule occurrence. The start
// instant is the schedule's minute offset from local midnight in the room's
// location timezone.
func (s *DefaultService) synthesize(room *models.Room, sched models.RecurringSchedule, date time.Time) (*models.Slot, error) {
	loc, err := time.LoadLocation(room.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q for room %s: %w", room.Timezone, room.ID, err)
	}
	startAt := time.Date(date.Year(), date.Month(), date.Day(), 0, sched.StartMinute, 0, 0, loc)

	d, err := scheduling.Derive(room, startAt)
	if err != nil {
		return nil, err
	}

	slot := &models.Slot{
		SlotNumber:      d.SlotNumber,
		RoomID:          room.ID,
		LocationID:      room.LocationID,
		RateID:          room.RateID,
		SupervisionID:   room.SupervisionID,
		ScheduleID:      sched.ID,
		ScheduleKind:    models.ScheduleKindRecurring,
		Date:            d.Date,
		StartAt:         startAt,
		EndAt:           d.EndAt,
		RoomAvailableAt: d.RoomAvailableAt,
		Exists:          false,
	}
	scheduling.RecomputeCapacity(slot, room)
	return slot, nil
}
