package scheduling

import (
	"context"

	"go.uber.org/zap"

	"roomquest/models"
	"roomquest/utils"
)

// PlaceBlock reserves participant capacity on a slot for an administrative
// reason (private event, maintenance). A virtual slot is materialized first —
// blocks need a row to hang off. After the insert the slot's blocked count is
// re-summed from all of its blocks and saved, which reruns the capacity
// recompute.
func (e *DefaultSlotEngine) PlaceBlock(ctx context.Context, slotNumber string, participants int, blockType, creatorID string) (*models.Block, error) {
	if participants <= 0 {
		return nil, NewValidationError("a block must reserve at least one participant")
	}

	slot, err := e.ResolveSlot(ctx, slotNumber)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NewSlotNotFoundError(slotNumber)
	}
	if slot.IsVirtual() {
		if err := e.SaveSlot(ctx, slot, creatorID); err != nil {
			return nil, err
		}
	}

	block := &models.Block{
		SlotID:       slot.ID,
		SlotNumber:   slot.SlotNumber,
		Participants: participants,
		Type:         blockType,
		CreatorID:    creatorID,
	}
	if err := e.Blocks.Create(ctx, block); err != nil {
		return nil, err
	}

	if err := e.resyncBlockedCount(ctx, slot, creatorID); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("block placed",
		zap.String("slotNumber", slot.SlotNumber),
		zap.Int("participants", participants),
		zap.String("type", blockType))
	return block, nil
}

// RemoveBlock deletes a block and resyncs the slot's blocked count.
func (e *DefaultSlotEngine) RemoveBlock(ctx context.Context, blockID, actorID string) error {
	block, err := e.Blocks.Delete(ctx, blockID)
	if err != nil {
		return err
	}

	slot, err := e.Slots.FindByID(ctx, block.SlotID)
	if err != nil {
		return err
	}
	if slot == nil {
		// Block outlived its slot; nothing left to resync.
		return nil
	}
	return e.resyncBlockedCount(ctx, slot, actorID)
}

// BlocksForSlot lists the blocks on a slot. Virtual slots have no row and
// therefore no blocks.
func (e *DefaultSlotEngine) BlocksForSlot(ctx context.Context, slotNumber string) ([]models.Block, error) {
	slot, err := e.ResolveSlot(ctx, slotNumber)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NewSlotNotFoundError(slotNumber)
	}
	if slot.IsVirtual() {
		return nil, nil
	}
	return e.Blocks.FindBySlotID(ctx, slot.ID)
}

func (e *DefaultSlotEngine) resyncBlockedCount(ctx context.Context, slot *models.Slot, actorID string) error {
	blocked, err := e.Blocks.SumParticipantsForSlot(ctx, slot.ID)
	if err != nil {
		return err
	}
	slot.ParticipantsBlocked = blocked
	return e.SaveSlot(ctx, slot, actorID)
}
