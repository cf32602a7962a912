package models

import "time"

// Block is an administrative capacity reservation against a slot, e.g. seats
// held back for a private event or a maintenance crew. Blocks reduce a slot's
// available participants without ever becoming a customer booking.
type Block struct {
	BlockID      string    `bson:"block_id" json:"block_id"`           // Unique identifier for the block
	SlotID       string    `bson:"slot_id" json:"slot_id"`             // Persisted slot the block applies to
	SlotNumber   string    `bson:"slot_number" json:"slot_number"`     // Derived slot identity, kept for lookups
	Participants int       `bson:"participants" json:"participants"`   // Headcount removed from availability
	Type         string    `bson:"type" json:"type"`                   // Reason tag (e.g., "private_event", "maintenance")
	CreatorID    string    `bson:"creator_id" json:"creator_id"`       // Actor who placed the block
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`       // Timestamp when the block was created
}
