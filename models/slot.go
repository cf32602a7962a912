package models

import "time"

// ScheduleKind tags the kind of schedule that produced a slot.
type ScheduleKind string

const (
	ScheduleKindRecurring ScheduleKind = "recurring"
	ScheduleKindOneOff    ScheduleKind = "oneoff"
)

// Slot represents a bookable game session for a room at a specific time.
// A slot either exists as a persisted record or is synthesized on the fly
// from a recurring schedule (a "virtual" slot, Exists=false). Both are
// addressed by the same derived slot number, which is what lets a future
// recurring session be held and booked before any row exists for it.
type Slot struct {
	ID              string       `bson:"id,omitempty" json:"id,omitempty"`               // Unique identifier (UUID); empty for virtual slots
	SlotNumber      string       `bson:"slot_number" json:"slot_number"`                 // Derived identity, unique per date/time/location/room
	RoomID          string       `bson:"room_id" json:"room_id"`                         // Room this slot belongs to
	LocationID      string       `bson:"location_id" json:"location_id"`                 // Denormalized from the room for location queries
	RateID          string       `bson:"rate_id,omitempty" json:"rate_id,omitempty"`     // Rate override; defaulted from the room on save
	SupervisionID   string       `bson:"supervision_id,omitempty" json:"supervision_id,omitempty"`
	ScheduleID      string       `bson:"schedule_id,omitempty" json:"schedule_id,omitempty"` // Schedule that produced this slot, if any
	ScheduleKind    ScheduleKind `bson:"schedule_kind,omitempty" json:"schedule_kind,omitempty"`
	Date            string       `bson:"date" json:"date"`                           // Calendar date in the room's location timezone, "2006-01-02"
	StartAt         time.Time    `bson:"start_at" json:"start_at"`                   // Game start instant
	EndAt           time.Time    `bson:"end_at" json:"end_at"`                       // StartAt + theme duration
	RoomAvailableAt time.Time    `bson:"room_available_at" json:"room_available_at"` // StartAt + room occupied time
	ParticipantsBooked    int    `bson:"participants_booked" json:"participants_booked"`       // Confirmed booking headcount
	ParticipantsBlocked   int    `bson:"participants_blocked" json:"participants_blocked"`     // Administratively held headcount
	ParticipantsAvailable int    `bson:"participants_available" json:"participants_available"` // Room capacity minus booked and blocked, floored at 0
	UpdaterID       string       `bson:"updater_id,omitempty" json:"updater_id,omitempty"` // Last actor to save this slot
	CreatedAt       time.Time    `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time    `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	// Exists reports whether this slot is backed by a persisted record.
	// Virtual slots carry Exists=false until materialized by a save.
	Exists bool `bson:"-" json:"-"`
}

// IsVirtual reports whether the slot has not yet been persisted.
func (s *Slot) IsVirtual() bool {
	return !s.Exists
}

// IsRecurring reports whether the slot was produced by a recurring schedule.
func (s *Slot) IsRecurring() bool {
	return s.ScheduleKind == ScheduleKindRecurring
}

// IsBookable reports whether the slot can still be booked at the given
// instant. A slot is bookable when its start is at least minLead away and no
// more than maxMonths calendar months ahead.
func (s *Slot) IsBookable(now time.Time, minLead time.Duration, maxMonths int) bool {
	if s.StartAt.Before(now.Add(minLead)) {
		return false
	}
	if s.StartAt.After(now.AddDate(0, maxMonths, 0)) {
		return false
	}
	return true
}

// IsActiveAtTimeRange reports whether the slot's occupied interval
// [StartAt, RoomAvailableAt] overlaps the given range. Used to find slots
// affected by closures or maintenance windows.
func (s *Slot) IsActiveAtTimeRange(from, to time.Time) bool {
	if !s.StartAt.Before(from) && !s.StartAt.After(to) {
		return true
	}
	if !s.RoomAvailableAt.Before(from) && !s.RoomAvailableAt.After(to) {
		return true
	}
	if !s.StartAt.After(from) && !s.RoomAvailableAt.Before(to) {
		return true
	}
	return false
}
