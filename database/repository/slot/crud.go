// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomquest/models"
)

func (r *mongoSlotRepo) FindBySlotNumber(ctx context.Context, slotNumber string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	err := r.coll.FindOne(ctx, bson.M{"slot_number": slotNumber}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching slot %s: %w", slotNumber, err)
	}
	slot.Exists = true
	return &slot, nil
}

func (r *mongoSlotRepo) FindByID(ctx context.Context, id string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching slot by id %s: %w", id, err)
	}
	slot.Exists = true
	return &slot, nil
}

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("error creating slot %s: %w", slot.SlotNumber, err)
	}
	slot.Exists = true
	return nil
}

func (r *mongoSlotRepo) Update(ctx context.Context, slot *models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	slot.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": slot.ID}, slot)
	if err != nil {
		return fmt.Errorf("error updating slot %s: %w", slot.SlotNumber, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("slot %s not found for update", slot.ID)
	}
	return nil
}
