package models

// RecurringSchedule describes a weekly repeating game time for a room. The
// calendar service expands schedules into virtual slots for any covered date;
// a slot row is only written once something (typically a booking or block)
// forces materialization.
type RecurringSchedule struct {
	ID          string `bson:"id" json:"id"`
	RoomID      string `bson:"room_id" json:"room_id"`
	LocationID  string `bson:"location_id" json:"location_id"`
	Weekday     int    `bson:"weekday" json:"weekday"`           // 0=Sunday .. 6=Saturday, matching time.Weekday
	StartMinute int    `bson:"start_minute" json:"start_minute"` // Minutes from local midnight (e.g., 845 for 14:05)
	ValidFrom   string `bson:"valid_from,omitempty" json:"valid_from,omitempty"` // First covered date, "2006-01-02"; empty = open
	ValidUntil  string `bson:"valid_until,omitempty" json:"valid_until,omitempty"` // Last covered date; empty = open
}

// ScheduleEraser suppresses a room's recurring schedule for a single date,
// e.g. a holiday closure. Erased dates produce no virtual slots.
type ScheduleEraser struct {
	ID     string `bson:"id" json:"id"`
	RoomID string `bson:"room_id" json:"room_id"`
	Date   string `bson:"date" json:"date"` // "2006-01-02" in the room's location timezone
}
