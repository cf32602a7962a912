package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomquest/services/scheduling"
	"roomquest/utils"
)

// HoldHandler exposes slot hold operations.
type HoldHandler struct {
	Engine scheduling.SlotEngine
	Logger *zap.Logger
}

// NewHoldHandler constructs a HoldHandler.
func NewHoldHandler(engine scheduling.SlotEngine, logger *zap.Logger) *HoldHandler {
	return &HoldHandler{Engine: engine, Logger: logger}
}

// SetHold places a hold on a slot for an explicit holder.
func (h *HoldHandler) SetHold(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	var input struct {
		HolderID  string     `json:"holder_id" binding:"required"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Engine.SetHold(c.Request.Context(), slotNumber, input.HolderID, input.ExpiresAt); err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to place hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"held": slotNumber})
}

// SetSessionHold places a hold keyed to the caller's session. A session id is
// taken from the X-Session-ID header or minted for first-time callers.
func (h *HoldHandler) SetSessionHold(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := h.Engine.SetSessionHold(c.Request.Context(), slotNumber, sessionID); err != nil {
		utils.JSONError(c, statusForEngineError(err), "failed to place session hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"held": slotNumber, "session_id": sessionID})
}

// GetHold returns the current hold on a slot, if any.
func (h *HoldHandler) GetHold(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	hold, err := h.Engine.GetHold(c.Request.Context(), slotNumber)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch hold", err.Error())
		return
	}
	if hold == nil {
		c.JSON(http.StatusOK, gin.H{"held": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"held": true, "hold": hold})
}

// ReleaseHold removes a slot's hold.
func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	slotNumber := c.Param("slotNumber")
	if err := h.Engine.ReleaseHold(c.Request.Context(), slotNumber); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to release hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"released": slotNumber})
}
