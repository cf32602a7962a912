package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomquest/models"
)

func TestHoldKey(t *testing.T) {
	if got := HoldKey("2403051405-3-7"); got != "slot.2403051405-3-7.hold" {
		t.Errorf("HoldKey = %q", got)
	}
}

func TestSetHoldThenHasAndRelease(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, _ := newTestEngine(clock)
	ctx := context.Background()

	if err := engine.SetHold(ctx, "2403051405-3-7", "user-42", nil); err != nil {
		t.Fatalf("SetHold: %v", err)
	}

	held, err := engine.HasHold(ctx, "2403051405-3-7")
	if err != nil {
		t.Fatalf("HasHold: %v", err)
	}
	if !held {
		t.Fatal("expected hold right after SetHold")
	}

	hold, err := engine.GetHold(ctx, "2403051405-3-7")
	if err != nil {
		t.Fatalf("GetHold: %v", err)
	}
	if hold == nil || hold.HolderID != "user-42" {
		t.Fatalf("hold = %+v, want holder user-42", hold)
	}
	if want := clock.Now().Add(600 * time.Second); !hold.ExpiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v (default lifetime)", hold.ExpiresAt, want)
	}

	if err := engine.ReleaseHold(ctx, "2403051405-3-7"); err != nil {
		t.Fatalf("ReleaseHold: %v", err)
	}
	held, err = engine.HasHold(ctx, "2403051405-3-7")
	if err != nil {
		t.Fatalf("HasHold: %v", err)
	}
	if held {
		t.Fatal("hold should be gone after release")
	}
}

func TestHoldExpiresWithTTL(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, _ := newTestEngine(clock)
	ctx := context.Background()

	if err := engine.SetHold(ctx, "2403051405-3-7", "user-42", nil); err != nil {
		t.Fatalf("SetHold: %v", err)
	}

	clock.Advance(599 * time.Second)
	if held, _ := engine.HasHold(ctx, "2403051405-3-7"); !held {
		t.Fatal("hold should still be present just before TTL")
	}

	clock.Advance(2 * time.Second)
	held, err := engine.HasHold(ctx, "2403051405-3-7")
	if err != nil {
		t.Fatalf("HasHold: %v", err)
	}
	if held {
		t.Fatal("hold should have lapsed after TTL")
	}
	hold, err := engine.GetHold(ctx, "2403051405-3-7")
	if err != nil {
		t.Fatalf("GetHold: %v", err)
	}
	if hold != nil {
		t.Fatalf("expired hold should be absent, got %+v", hold)
	}
}

func TestSetHoldExplicitExpiry(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, _ := newTestEngine(clock)
	ctx := context.Background()

	exp := clock.Now().Add(30 * time.Second)
	if err := engine.SetHold(ctx, "2403051405-3-7", "user-42", &exp); err != nil {
		t.Fatalf("SetHold: %v", err)
	}

	clock.Advance(31 * time.Second)
	if held, _ := engine.HasHold(ctx, "2403051405-3-7"); held {
		t.Fatal("hold should honor the explicit expiry")
	}
}

func TestSetHoldRejectsPastExpiry(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, _ := newTestEngine(clock)

	exp := clock.Now().Add(-time.Minute)
	err := engine.SetHold(context.Background(), "2403051405-3-7", "user-42", &exp)
	if !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestSetHoldLastWriterWins(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, _ := newTestEngine(clock)
	ctx := context.Background()

	if err := engine.SetHold(ctx, "2403051405-3-7", "first", nil); err != nil {
		t.Fatalf("SetHold: %v", err)
	}
	if err := engine.SetHold(ctx, "2403051405-3-7", "second", nil); err != nil {
		t.Fatalf("SetHold: %v", err)
	}

	hold, err := engine.GetHold(ctx, "2403051405-3-7")
	if err != nil {
		t.Fatalf("GetHold: %v", err)
	}
	if hold.HolderID != "second" {
		t.Errorf("holder = %q, want the later writer", hold.HolderID)
	}
}

func TestHoldStoreFailureSurfaces(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, holds := newTestEngine(clock)
	ctx := context.Background()

	storeErr := errors.New("redis: connection refused")
	holds.failWith = storeErr

	if err := engine.SetHold(ctx, "2403051405-3-7", "user-42", nil); !errors.Is(err, storeErr) {
		t.Errorf("SetHold err = %v, want store failure", err)
	}
	if _, err := engine.HasHold(ctx, "2403051405-3-7"); !errors.Is(err, storeErr) {
		t.Errorf("HasHold err = %v, want store failure, not a silent false", err)
	}
	if _, err := engine.GetHold(ctx, "2403051405-3-7"); !errors.Is(err, storeErr) {
		t.Errorf("GetHold err = %v, want store failure", err)
	}
}

func TestSetSessionHoldResolvesVirtualSlot(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, cal, _ := newTestEngine(clock)
	ctx := context.Background()

	room := testRoom()
	startAt := time.Date(2024, 3, 5, 14, 5, 0, 0, time.UTC)
	d, err := Derive(&room, startAt)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	cal.candidates["2024-03-05"] = []models.Slot{{
		SlotNumber: d.SlotNumber,
		RoomID:     room.ID,
		LocationID: room.LocationID,
		Date:       d.Date,
		StartAt:    startAt,
	}}

	if err := engine.SetSessionHold(ctx, d.SlotNumber, "sess-abc"); err != nil {
		t.Fatalf("SetSessionHold: %v", err)
	}
	hold, err := engine.GetHold(ctx, d.SlotNumber)
	if err != nil {
		t.Fatalf("GetHold: %v", err)
	}
	if hold == nil || hold.HolderID != "sess-abc" {
		t.Fatalf("hold = %+v, want session holder", hold)
	}
}

func TestSetSessionHoldUnresolvableSlot(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, _, _, _, _, _ := newTestEngine(clock)

	err := engine.SetSessionHold(context.Background(), "2403051405-3-7", "sess-abc")
	if !IsSlotNotFound(err) {
		t.Fatalf("err = %v, want slot-not-found", err)
	}
}
