package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	blockRepo "roomquest/database/repository/block"
	roomRepo "roomquest/database/repository/room"
	"roomquest/models"
	"roomquest/services/scheduling"
	"roomquest/utils"
)

// SlotHandler exposes the scheduling engine over HTTP.
type SlotHandler struct {
	Engine scheduling.SlotEngine
	Logger *zap.Logger
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(engine scheduling.SlotEngine, logger *zap.Logger) *SlotHandler {
	return &SlotHandler{Engine: engine, Logger: logger}
}

// statusForEngineError maps engine failures to HTTP statuses.
func statusForEngineError(err error) int {
	switch {
	case scheduling.IsValidation(err):
		return http.StatusUnprocessableEntity
	case scheduling.IsSlotNotFound(err),
		errors.Is(err, roomRepo.ErrRoomNotFound),
		errors.Is(err, blockRepo.ErrBlockNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ResolveSlot returns the real or virtual slot addressed by a slot number.
func (h *SlotHandler) ResolveSlot(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	slot, err := h.Engine.ResolveSlot(c.Request.Context(), slotNumber)
	if err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to resolve slot", err.Error())
		return
	}
	if slot == nil {
		utils.JSONError(c, http.StatusNotFound, "slot not found", fmt.Sprintf("no slot or covering schedule for %s", slotNumber))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slot":     slot,
		"virtual":  slot.IsVirtual(),
		"bookable": h.Engine.IsBookable(slot, time.Now().UTC()),
	})
}

// ListSlots returns the persisted slots for a location on a date.
func (h *SlotHandler) ListSlots(c *gin.Context) {
	locationID := c.Param("locationID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}
	slots, err := h.Engine.SlotsForLocationDate(c.Request.Context(), locationID, date)
	if err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to list slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// SaveSlot creates or updates a slot through the lifecycle pipeline.
func (h *SlotHandler) SaveSlot(c *gin.Context) {
	var input struct {
		Slot    models.Slot `json:"slot"`
		ActorID string      `json:"actor_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// The engine re-derives the slot number and adopts any existing record
	// itself; the request body's id and slot_number are advisory.
	slot := input.Slot
	if err := h.Engine.SaveSlot(c.Request.Context(), &slot, input.ActorID); err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to save slot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// PlaceBlock reserves capacity on a slot for an administrative reason.
func (h *SlotHandler) PlaceBlock(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	var input struct {
		Participants int    `json:"participants" binding:"required"`
		Type         string `json:"type"`
		CreatorID    string `json:"creator_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block, err := h.Engine.PlaceBlock(c.Request.Context(), slotNumber, input.Participants, input.Type, input.CreatorID)
	if err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to place block", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// ListBlocks returns the blocks placed on a slot.
func (h *SlotHandler) ListBlocks(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	blocks, err := h.Engine.BlocksForSlot(c.Request.Context(), slotNumber)
	if err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to list blocks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// ActiveSlots returns the persisted slots whose occupied interval overlaps
// [from, to]. Both bounds are RFC 3339 timestamps.
func (h *SlotHandler) ActiveSlots(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from must be an RFC 3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "to must be an RFC 3339 timestamp")
		return
	}

	slots, err := h.Engine.SlotsActiveInRange(c.Request.Context(), from, to)
	if err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to list active slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// RemoveBlock deletes a block and resyncs the slot's capacity.
func (h *SlotHandler) RemoveBlock(c *gin.Context) {
	blockID := c.Param("blockID")
	actorID := c.Query("actor_id")
	if err := h.Engine.RemoveBlock(c.Request.Context(), blockID, actorID); err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to remove block", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": blockID})
}
