package scheduling

import (
	"context"

	"go.uber.org/zap"

	"roomquest/models"
	"roomquest/utils"
)

// SaveSlot is the single write path for slot records and runs the full
// pipeline before persisting: validate, load the room, default rate and
// supervision from it, derive identity and time boundaries, recompute
// capacity, stamp the acting user. Virtual slots are inserted (materialized),
// existing ones replaced. The storage layer must never write a slot any other
// way — a slot that skipped this pipeline has stale derived fields.
func (e *DefaultSlotEngine) SaveSlot(ctx context.Context, slot *models.Slot, actorID string) error {
	if slot.RoomID == "" {
		return NewValidationError("an availability slot must be for a room")
	}
	if slot.StartAt.IsZero() {
		return NewValidationError("an availability slot must have a date & time")
	}

	room, err := e.Rooms.FindByID(ctx, slot.RoomID)
	if err != nil {
		return err
	}

	if slot.RateID == "" {
		slot.RateID = room.RateID
	}
	if slot.SupervisionID == "" {
		slot.SupervisionID = room.SupervisionID
	}

	d, err := Derive(room, slot.StartAt)
	if err != nil {
		return err
	}
	slot.Date = d.Date
	slot.EndAt = d.EndAt
	slot.RoomAvailableAt = d.RoomAvailableAt
	slot.SlotNumber = d.SlotNumber
	slot.LocationID = room.LocationID

	RecomputeCapacity(slot, room)

	if actorID != "" {
		slot.UpdaterID = actorID
	}

	// The derived number, not the caller's bookkeeping, decides whether a row
	// already exists. A caller handing in a fresh struct for an already
	// materialized slot must update that row, not collide with the unique
	// slot_number index.
	if slot.IsVirtual() {
		existing, err := e.Slots.FindBySlotNumber(ctx, slot.SlotNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			slot.ID = existing.ID
			slot.CreatedAt = existing.CreatedAt
			slot.Exists = true
		}
	}

	if slot.IsVirtual() {
		if err := e.Slots.Create(ctx, slot); err != nil {
			return err
		}
		utils.GetLogger().Info("slot materialized",
			zap.String("slotNumber", slot.SlotNumber),
			zap.String("roomID", slot.RoomID))
		return nil
	}
	return e.Slots.Update(ctx, slot)
}
