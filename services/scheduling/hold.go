package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"roomquest/models"
	"roomquest/utils"
)

// HoldKey returns the ephemeral-store key for a slot's hold.
func HoldKey(slotNumber string) string {
	return "slot." + slotNumber + ".hold"
}

// HoldStore is the ephemeral key-value store backing holds. Expiry is
// enforced by the store's TTL; Get returns (nil, nil) for an absent or lapsed
// key. Store failures are returned as errors, never collapsed into "no hold".
type HoldStore interface {
	Put(ctx context.Context, key string, hold models.Hold, ttl time.Duration) error
	Get(ctx context.Context, key string) (*models.Hold, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

type redisHoldStore struct {
	client *redis.Client
}

// NewRedisHoldStore wraps a redis client as a HoldStore.
func NewRedisHoldStore(client *redis.Client) HoldStore {
	return &redisHoldStore{client: client}
}

func (s *redisHoldStore) Put(ctx context.Context, key string, hold models.Hold, ttl time.Duration) error {
	data, err := json.Marshal(hold)
	if err != nil {
		return fmt.Errorf("failed to marshal hold: %w", err)
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save hold: %w", err)
	}
	return nil
}

func (s *redisHoldStore) Get(ctx context.Context, key string) (*models.Hold, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hold: %w", err)
	}
	var hold models.Hold
	if err := json.Unmarshal([]byte(data), &hold); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hold: %w", err)
	}
	return &hold, nil
}

func (s *redisHoldStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check hold: %w", err)
	}
	return n > 0, nil
}

func (s *redisHoldStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete hold: %w", err)
	}
	return nil
}

// SetHold places an exclusive hold on a slot for the given holder. When
// expiresAt is nil the configured default lifetime applies.
//
// The write is unconditional last-writer-wins: two near-simultaneous holders
// can each overwrite the other before either reads back. This is an accepted
// limitation; callers needing strict exclusion must layer an atomic
// check-and-set at the store.
func (e *DefaultSlotEngine) SetHold(ctx context.Context, slotNumber, holderID string, expiresAt *time.Time) error {
	ttl := e.HoldLifetime
	exp := e.now().Add(ttl)
	if expiresAt != nil {
		exp = *expiresAt
		ttl = exp.Sub(e.now())
	}
	if ttl <= 0 {
		return NewValidationError("hold expiry must be in the future")
	}

	hold := models.Hold{HolderID: holderID, ExpiresAt: exp}
	if err := e.Holds.Put(ctx, HoldKey(slotNumber), hold, ttl); err != nil {
		return err
	}
	utils.GetLogger().Debug("slot hold placed",
		zap.String("slotNumber", slotNumber),
		zap.String("holderID", holderID),
		zap.Time("expiresAt", exp))
	return nil
}

// SetSessionHold resolves a slot number to a real or virtual slot and places
// a hold for the caller's session. The session id is opaque to the engine; it
// only needs to be stable for the holder.
func (e *DefaultSlotEngine) SetSessionHold(ctx context.Context, slotNumber, sessionID string) error {
	slot, err := e.ResolveSlot(ctx, slotNumber)
	if err != nil {
		return err
	}
	if slot == nil {
		return NewSlotNotFoundError(slotNumber)
	}
	return e.SetHold(ctx, slot.SlotNumber, sessionID, nil)
}

// GetHold returns the current hold on a slot, or nil when none exists.
func (e *DefaultSlotEngine) GetHold(ctx context.Context, slotNumber string) (*models.Hold, error) {
	return e.Holds.Get(ctx, HoldKey(slotNumber))
}

// HasHold reports whether a slot currently carries a hold.
func (e *DefaultSlotEngine) HasHold(ctx context.Context, slotNumber string) (bool, error) {
	return e.Holds.Exists(ctx, HoldKey(slotNumber))
}

// ReleaseHold removes a slot's hold. Releasing an absent hold is a no-op.
func (e *DefaultSlotEngine) ReleaseHold(ctx context.Context, slotNumber string) error {
	return e.Holds.Delete(ctx, HoldKey(slotNumber))
}
