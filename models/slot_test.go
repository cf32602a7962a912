package models

import (
	"testing"
	"time"
)

func TestSlotIsBookable(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	minLead := 20 * time.Minute
	maxMonths := 6

	tests := []struct {
		name    string
		startAt time.Time
		want    bool
	}{
		{"in the past", time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC), false},
		{"inside the lead window", time.Date(2024, 1, 1, 0, 15, 0, 0, time.UTC), false},
		{"exactly at the lead boundary", time.Date(2024, 1, 1, 0, 20, 0, 0, time.UTC), true},
		{"just past the lead window", time.Date(2024, 1, 1, 0, 25, 0, 0, time.UTC), true},
		{"well inside the horizon", time.Date(2024, 4, 15, 14, 0, 0, 0, time.UTC), true},
		{"exactly at the horizon", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), true},
		{"beyond six months", time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := Slot{StartAt: tt.startAt}
			if got := slot.IsBookable(now, minLead, maxMonths); got != tt.want {
				t.Errorf("IsBookable(%v) = %v, want %v", tt.startAt, got, tt.want)
			}
		})
	}
}

func TestSlotIsActiveAtTimeRange(t *testing.T) {
	// Slot occupies 10:00 to 11:00.
	slot := Slot{
		StartAt:         time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		RoomAvailableAt: time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC),
	}
	at := func(h, m int) time.Time {
		return time.Date(2024, 3, 5, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"range overlaps the start", at(9, 30), at(10, 15), true},
		{"range overlaps the end", at(10, 45), at(11, 30), true},
		{"range inside the slot", at(10, 15), at(10, 45), true},
		{"slot inside the range", at(9, 0), at(12, 0), true},
		{"range before the slot", at(8, 0), at(9, 30), false},
		{"range after the slot", at(11, 30), at(12, 0), false},
		{"range ends exactly at start", at(9, 0), at(10, 0), true},
		{"range starts exactly at end", at(11, 0), at(12, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slot.IsActiveAtTimeRange(tt.from, tt.to); got != tt.want {
				t.Errorf("IsActiveAtTimeRange(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSlotVirtualAndRecurringFlags(t *testing.T) {
	virtual := Slot{}
	if !virtual.IsVirtual() {
		t.Error("zero slot must be virtual")
	}

	persisted := Slot{Exists: true}
	if persisted.IsVirtual() {
		t.Error("persisted slot must not be virtual")
	}

	recurring := Slot{ScheduleKind: ScheduleKindRecurring}
	if !recurring.IsRecurring() {
		t.Error("recurring kind not detected")
	}
	if (&Slot{ScheduleKind: ScheduleKindOneOff}).IsRecurring() {
		t.Error("oneoff slot reported as recurring")
	}
}
