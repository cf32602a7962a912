package models

// Room represents a themed escape room at a location. Room attributes drive
// every derived field on a slot: the theme duration fixes the slot end time,
// the occupied time fixes when the room frees up for the next group, and the
// participant count is the capacity that bookings and blocks consume.
type Room struct {
	ID            string `bson:"id" json:"id"`                         // Unique room identifier
	Name          string `bson:"name" json:"name"`                     // Display name (e.g., "The Vault")
	LocationID    string `bson:"location_id" json:"location_id"`       // Location the room belongs to
	Timezone      string `bson:"timezone" json:"timezone"`             // IANA timezone of the location (e.g., "America/Chicago")
	Theme         Theme  `bson:"theme" json:"theme"`                   // Theme the room is currently running
	OccupiedTime  int    `bson:"occupied_time" json:"occupied_time"`   // Minutes from slot start until the room is free again (game + reset)
	Participants  int    `bson:"participants" json:"participants"`     // Maximum participants per game
	RateID        string `bson:"rate_id" json:"rate_id"`               // Default rate applied to new slots
	SupervisionID string `bson:"supervision_id" json:"supervision_id"` // Default staffing requirement for new slots
}

// Theme describes the game currently installed in a room.
type Theme struct {
	Name     string `bson:"name" json:"name"`
	Duration int    `bson:"duration" json:"duration"` // Game length in minutes
}
