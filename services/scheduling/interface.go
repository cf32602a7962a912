package scheduling

import (
	"context"
	"time"

	blockRepo "roomquest/database/repository/block"
	roomRepo "roomquest/database/repository/room"
	slotRepo "roomquest/database/repository/slot"
	"roomquest/models"
)

// CalendarService is the external calendar collaborator. It owns the inverse
// of the slot-number format and the expansion of recurring schedules into
// virtual slot candidates.
type CalendarService interface {
	DateFromSlotNumber(slotNumber string) (time.Time, error)
	LocationIDFromSlotNumber(slotNumber string) (string, error)
	VirtualSlotsForDate(ctx context.Context, locationID string, date time.Time) ([]models.Slot, error)
}

// SlotEngine is the availability and hold-management engine. Everything the
// rest of the system does to slots goes through here: resolving real or
// virtual slots by number, the mandatory save pipeline, hold arbitration and
// administrative blocks.
type SlotEngine interface {
	ResolveSlot(ctx context.Context, slotNumber string) (*models.Slot, error)
	SaveSlot(ctx context.Context, slot *models.Slot, actorID string) error
	SlotsForLocationDate(ctx context.Context, locationID, date string) ([]models.Slot, error)

	SetHold(ctx context.Context, slotNumber, holderID string, expiresAt *time.Time) error
	SetSessionHold(ctx context.Context, slotNumber, sessionID string) error
	GetHold(ctx context.Context, slotNumber string) (*models.Hold, error)
	HasHold(ctx context.Context, slotNumber string) (bool, error)
	ReleaseHold(ctx context.Context, slotNumber string) error

	PlaceBlock(ctx context.Context, slotNumber string, participants int, blockType, creatorID string) (*models.Block, error)
	RemoveBlock(ctx context.Context, blockID, actorID string) error
	BlocksForSlot(ctx context.Context, slotNumber string) ([]models.Block, error)

	SlotsActiveInRange(ctx context.Context, from, to time.Time) ([]models.Slot, error)

	IsBookable(slot *models.Slot, now time.Time) bool
}

// DefaultSlotEngine implements SlotEngine.
type DefaultSlotEngine struct {
	Slots    slotRepo.SlotRepository
	Rooms    roomRepo.RoomRepository
	Blocks   blockRepo.BlockRepository
	Calendar CalendarService
	Holds    HoldStore

	// HoldLifetime is the default TTL applied when SetHold gets no expiry.
	HoldLifetime time.Duration
	// Booking window: minimum lead time and maximum calendar months ahead.
	MinLead   time.Duration
	MaxMonths int

	// Now is the clock; tests substitute it.
	Now func() time.Time
}

func (e *DefaultSlotEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

// IsBookable reports whether a slot's start falls inside the booking window
// at the given instant.
func (e *DefaultSlotEngine) IsBookable(slot *models.Slot, now time.Time) bool {
	return slot.IsBookable(now, e.MinLead, e.MaxMonths)
}

// SlotsForLocationDate returns the persisted slots for a location on a date.
func (e *DefaultSlotEngine) SlotsForLocationDate(ctx context.Context, locationID, date string) ([]models.Slot, error) {
	return e.Slots.FindByLocationAndDate(ctx, locationID, date)
}

// SlotsActiveInRange returns the persisted slots whose occupied interval
// overlaps [from, to]. Used to find games affected by a closure or maintenance
// window.
func (e *DefaultSlotEngine) SlotsActiveInRange(ctx context.Context, from, to time.Time) ([]models.Slot, error) {
	if !from.Before(to) {
		return nil, NewValidationError("range start must precede range end")
	}
	return e.Slots.FindActiveInRange(ctx, from, to)
}
