package scheduling

import "roomquest/models"

// RecomputeCapacity refreshes a slot's available participant count from the
// room's capacity and the slot's booked and blocked counts. Unset counts
// default to zero and availability never goes negative: blocks are allowed to
// exceed capacity (a full private buyout plus a maintenance hold is a normal
// state), the remainder just clamps to zero.
//
// This is a pure recompute, not a concurrency primitive. It runs on every
// save; when bookings or blocks change outside a save, the caller must run the
// slot back through SaveSlot to resync.
func RecomputeCapacity(slot *models.Slot, room *models.Room) {
	if slot.ParticipantsBooked < 0 {
		slot.ParticipantsBooked = 0
	}
	if slot.ParticipantsBlocked < 0 {
		slot.ParticipantsBlocked = 0
	}
	available := room.Participants - (slot.ParticipantsBooked + slot.ParticipantsBlocked)
	if available < 0 {
		available = 0
	}
	slot.ParticipantsAvailable = available
}
