package scheduling

import (
	"fmt"
	"strings"
	"time"

	"roomquest/models"
)

// Derivation holds the fields computed from a room and a start instant.
type Derivation struct {
	Date            string    // Calendar date in the room's location timezone, "2006-01-02"
	EndAt           time.Time // Game end: start + theme duration
	RoomAvailableAt time.Time // Room free for the next group: start + occupied time
	SlotNumber      string    // Canonical slot identity
}

// Derive computes a slot's canonical identity and time boundaries. The slot
// number is YYMMDD + HHmm + "-" + locationID + "-" + roomID, e.g.
// "2403051405-3-7". The date portion uses the location's calendar date while
// the time portion is the UTC time of day, so the identity depends only on
// the instant, never on the zone a time.Time happens to be expressed in
// (persisted values come back from the store as UTC, synthesized ones carry
// the location zone). External systems parse this string back apart, so it
// must stay byte-for-byte stable.
//
// The year is two digits. The format predates this service and is shared with
// downstream systems; it is not safe across centuries and the parser pins it
// to 20xx.
func Derive(room *models.Room, startAt time.Time) (Derivation, error) {
	loc, err := time.LoadLocation(room.Timezone)
	if err != nil {
		return Derivation{}, fmt.Errorf("invalid timezone %q for room %s: %w", room.Timezone, room.ID, err)
	}

	date := startAt.In(loc).Format("2006-01-02")

	d := Derivation{
		Date:            date,
		EndAt:           startAt.Add(time.Duration(room.Theme.Duration) * time.Minute),
		RoomAvailableAt: startAt.Add(time.Duration(room.OccupiedTime) * time.Minute),
	}

	// "2024-03-05" -> "240305"
	dateDigits := strings.ReplaceAll(date[2:], "-", "")
	d.SlotNumber = dateDigits + startAt.UTC().Format("1504") + "-" + room.LocationID + "-" + room.ID

	return d, nil
}
