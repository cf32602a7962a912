package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"roomquest/cron"
	roomRepo "roomquest/database/repository/room"
	scheduleRepo "roomquest/database/repository/schedule"
	"roomquest/models"
	"roomquest/utils"
)

// AdminHandler exposes the operational surface: room and schedule management
// plus on-demand slot materialization.
type AdminHandler struct {
	Queue     *asynq.Client
	Rooms     roomRepo.RoomRepository
	Schedules scheduleRepo.ScheduleRepository
	Logger    *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(queue *asynq.Client, rooms roomRepo.RoomRepository, schedules scheduleRepo.ScheduleRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Queue: queue, Rooms: rooms, Schedules: schedules, Logger: logger}
}

// MaterializeSlots enqueues expansion of a location's recurring schedules
// into persisted slot rows for the configured horizon.
func (h *AdminHandler) MaterializeSlots(c *gin.Context) {
	locationID := c.Param("locationID")
	task, err := cron.NewMaterializeTask(locationID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build task", err.Error())
		return
	}
	info, err := h.Queue.EnqueueContext(c.Request.Context(), task)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to enqueue task", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": info.ID, "location_id": locationID})
}

// CreateRoom registers a new escape room.
func (h *AdminHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if room.LocationID == "" || room.Timezone == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid room", "location_id and timezone are required")
		return
	}
	if err := h.Rooms.Create(c.Request.Context(), &room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

// ListRooms returns the rooms at a location.
func (h *AdminHandler) ListRooms(c *gin.Context) {
	locationID := c.Param("locationID")
	rooms, err := h.Rooms.FindByLocation(c.Request.Context(), locationID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// CreateSchedule registers a recurring weekly schedule for a room.
func (h *AdminHandler) CreateSchedule(c *gin.Context) {
	var schedule models.RecurringSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if schedule.RoomID == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid schedule", "room_id is required")
		return
	}
	if schedule.Weekday < 0 || schedule.Weekday > 6 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid schedule", "weekday must be 0 (Sunday) through 6 (Saturday)")
		return
	}
	if schedule.StartMinute < 0 || schedule.StartMinute >= 24*60 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid schedule", "start_minute must fall within the day")
		return
	}

	// The schedule's location must match the room's; virtual expansion filters
	// by location before it ever loads the room.
	room, err := h.Rooms.FindByID(c.Request.Context(), schedule.RoomID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unknown room", err.Error())
		return
	}
	schedule.LocationID = room.LocationID

	if err := h.Schedules.Create(c.Request.Context(), &schedule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create schedule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// CreateEraser suppresses a room's recurring slots for a single date.
func (h *AdminHandler) CreateEraser(c *gin.Context) {
	var eraser models.ScheduleEraser
	if err := c.ShouldBindJSON(&eraser); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if eraser.RoomID == "" || eraser.Date == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid eraser", "room_id and date are required")
		return
	}
	if err := h.Schedules.CreateEraser(c.Request.Context(), &eraser); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create eraser", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"eraser": eraser})
}
