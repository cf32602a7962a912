package scheduling

import (
	"context"

	"go.uber.org/zap"

	"roomquest/models"
	"roomquest/utils"
)

// ResolveSlot finds the slot addressed by a slot number. A persisted record
// wins; otherwise the calendar collaborator expands the recurring schedules
// covering that location and date into virtual candidates and the one whose
// derived number matches is returned. A (nil, nil) result means the number
// addresses no scheduled time at all — a normal outcome, not an error.
func (e *DefaultSlotEngine) ResolveSlot(ctx context.Context, slotNumber string) (*models.Slot, error) {
	slot, err := e.Slots.FindBySlotNumber(ctx, slotNumber)
	if err != nil {
		return nil, err
	}
	if slot != nil {
		return slot, nil
	}

	// No row yet; the number may still address a virtual slot.
	date, err := e.Calendar.DateFromSlotNumber(slotNumber)
	if err != nil {
		utils.GetLogger().Debug("unparseable slot number", zap.String("slotNumber", slotNumber), zap.Error(err))
		return nil, nil
	}
	locationID, err := e.Calendar.LocationIDFromSlotNumber(slotNumber)
	if err != nil {
		return nil, nil
	}

	candidates, err := e.Calendar.VirtualSlotsForDate(ctx, locationID, date)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].SlotNumber == slotNumber {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
