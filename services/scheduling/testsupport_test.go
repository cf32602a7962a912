package scheduling

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	blockRepo "roomquest/database/repository/block"
	roomRepo "roomquest/database/repository/room"
	"roomquest/models"
)

// fakeClock is a settable clock shared between the engine and the hold store.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeRoomRepo serves rooms from a map and fails loudly on unknown ids.
type fakeRoomRepo struct {
	rooms map[string]models.Room
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", roomRepo.ErrRoomNotFound, id)
	}
	return &room, nil
}

func (f *fakeRoomRepo) FindByLocation(_ context.Context, locationID string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.LocationID == locationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	f.rooms[room.ID] = *room
	return nil
}

// fakeSlotRepo is an in-memory SlotRepository keyed by slot number.
type fakeSlotRepo struct {
	byNumber map[string]models.Slot
	creates  int
	updates  int
	nextID   int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{byNumber: make(map[string]models.Slot)}
}

func (f *fakeSlotRepo) FindBySlotNumber(_ context.Context, slotNumber string) (*models.Slot, error) {
	s, ok := f.byNumber[slotNumber]
	if !ok {
		return nil, nil
	}
	s.Exists = true
	return &s, nil
}

func (f *fakeSlotRepo) FindByID(_ context.Context, id string) (*models.Slot, error) {
	for _, s := range f.byNumber {
		if s.ID == id {
			s.Exists = true
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSlotRepo) FindByLocationAndDate(_ context.Context, locationID, date string) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range f.byNumber {
		if s.LocationID == locationID && s.Date == date {
			s.Exists = true
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) FindActiveInRange(_ context.Context, from, to time.Time) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range f.byNumber {
		if !s.StartAt.After(to) && !s.RoomAvailableAt.Before(from) {
			s.Exists = true
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *models.Slot) error {
	if _, dup := f.byNumber[slot.SlotNumber]; dup {
		return fmt.Errorf("duplicate slot_number %s", slot.SlotNumber)
	}
	if slot.ID == "" {
		f.nextID++
		slot.ID = fmt.Sprintf("slot-%d", f.nextID)
	}
	slot.Exists = true
	f.byNumber[slot.SlotNumber] = *slot
	f.creates++
	return nil
}

func (f *fakeSlotRepo) Update(_ context.Context, slot *models.Slot) error {
	for num, s := range f.byNumber {
		if s.ID == slot.ID {
			delete(f.byNumber, num)
			f.byNumber[slot.SlotNumber] = *slot
			f.updates++
			return nil
		}
	}
	return fmt.Errorf("slot %s not found for update", slot.ID)
}

// fakeBlockRepo is an in-memory BlockRepository.
type fakeBlockRepo struct {
	blocks map[string]models.Block
	nextID int
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{blocks: make(map[string]models.Block)}
}

func (f *fakeBlockRepo) Create(_ context.Context, block *models.Block) error {
	if block.BlockID == "" {
		f.nextID++
		block.BlockID = fmt.Sprintf("block-%d", f.nextID)
	}
	f.blocks[block.BlockID] = *block
	return nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, blockID string) (*models.Block, error) {
	b, ok := f.blocks[blockID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", blockRepo.ErrBlockNotFound, blockID)
	}
	delete(f.blocks, blockID)
	return &b, nil
}

func (f *fakeBlockRepo) FindBySlotID(_ context.Context, slotID string) ([]models.Block, error) {
	var out []models.Block
	for _, b := range f.blocks {
		if b.SlotID == slotID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) SumParticipantsForSlot(_ context.Context, slotID string) (int, error) {
	total := 0
	for _, b := range f.blocks {
		if b.SlotID == slotID {
			total += b.Participants
		}
	}
	return total, nil
}

// fakeCalendar serves virtual candidates from a date-keyed map and parses
// slot numbers the same way the real calendar service does.
type fakeCalendar struct {
	candidates map[string][]models.Slot // "2006-01-02" -> candidates
}

func (f *fakeCalendar) DateFromSlotNumber(slotNumber string) (time.Time, error) {
	parts := strings.SplitN(slotNumber, "-", 3)
	if len(parts) != 3 || len(parts[0]) != 10 {
		return time.Time{}, fmt.Errorf("malformed slot number %q", slotNumber)
	}
	return time.Parse("060102", parts[0][:6])
}

func (f *fakeCalendar) LocationIDFromSlotNumber(slotNumber string) (string, error) {
	parts := strings.SplitN(slotNumber, "-", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed slot number %q", slotNumber)
	}
	return parts[1], nil
}

func (f *fakeCalendar) VirtualSlotsForDate(_ context.Context, locationID string, date time.Time) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range f.candidates[date.Format("2006-01-02")] {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeHoldStore enforces TTLs against an injected clock. Setting failWith
// makes every call error, for store-outage tests.
type fakeHoldStore struct {
	clock    *fakeClock
	items    map[string]fakeHoldEntry
	failWith error
}

type fakeHoldEntry struct {
	hold      models.Hold
	expiresAt time.Time
}

func newFakeHoldStore(clock *fakeClock) *fakeHoldStore {
	return &fakeHoldStore{clock: clock, items: make(map[string]fakeHoldEntry)}
}

func (f *fakeHoldStore) Put(_ context.Context, key string, hold models.Hold, ttl time.Duration) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.items[key] = fakeHoldEntry{hold: hold, expiresAt: f.clock.Now().Add(ttl)}
	return nil
}

func (f *fakeHoldStore) Get(_ context.Context, key string) (*models.Hold, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	entry, ok := f.items[key]
	if !ok || !f.clock.Now().Before(entry.expiresAt) {
		return nil, nil
	}
	hold := entry.hold
	return &hold, nil
}

func (f *fakeHoldStore) Exists(_ context.Context, key string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	entry, ok := f.items[key]
	return ok && f.clock.Now().Before(entry.expiresAt), nil
}

func (f *fakeHoldStore) Delete(_ context.Context, key string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.items, key)
	return nil
}

// testRoom is the room used by the worked examples: location 3, room 7,
// 60 minute games, 75 minutes until the room frees up, 10 participants.
func testRoom() models.Room {
	return models.Room{
		ID:            "7",
		Name:          "The Vault",
		LocationID:    "3",
		Timezone:      "UTC",
		Theme:         models.Theme{Name: "Heist", Duration: 60},
		OccupiedTime:  75,
		Participants:  10,
		RateID:        "rate-1",
		SupervisionID: "sup-1",
	}
}

// newTestEngine wires an engine entirely onto fakes.
func newTestEngine(clock *fakeClock) (*DefaultSlotEngine, *fakeSlotRepo, *fakeRoomRepo, *fakeBlockRepo, *fakeCalendar, *fakeHoldStore) {
	slots := newFakeSlotRepo()
	rooms := &fakeRoomRepo{rooms: map[string]models.Room{"7": testRoom()}}
	blocks := newFakeBlockRepo()
	cal := &fakeCalendar{candidates: make(map[string][]models.Slot)}
	holds := newFakeHoldStore(clock)

	engine := &DefaultSlotEngine{
		Slots:        slots,
		Rooms:        rooms,
		Blocks:       blocks,
		Calendar:     cal,
		Holds:        holds,
		HoldLifetime: 600 * time.Second,
		MinLead:      20 * time.Minute,
		MaxMonths:    6,
		Now:          clock.Now,
	}
	return engine, slots, rooms, blocks, cal, holds
}
