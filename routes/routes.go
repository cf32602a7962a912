package routes

import (
	"github.com/gin-gonic/gin"

	"roomquest/handlers"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, slots *handlers.SlotHandler, holds *handlers.HoldHandler, admin *handlers.AdminHandler) {
	api := r.Group("/api")

	slotAPI := api.Group("/slots")
	{
		slotAPI.POST("", slots.SaveSlot)
		slotAPI.GET("", slots.ActiveSlots)
		slotAPI.GET("/:slotNumber", slots.ResolveSlot)
		slotAPI.POST("/:slotNumber/blocks", slots.PlaceBlock)
		slotAPI.GET("/:slotNumber/blocks", slots.ListBlocks)

		slotAPI.POST("/:slotNumber/hold", holds.SetHold)
		slotAPI.POST("/:slotNumber/session-hold", holds.SetSessionHold)
		slotAPI.GET("/:slotNumber/hold", holds.GetHold)
		slotAPI.DELETE("/:slotNumber/hold", holds.ReleaseHold)
	}

	api.DELETE("/blocks/:blockID", slots.RemoveBlock)
	api.GET("/locations/:locationID/slots", slots.ListSlots)

	adminAPI := api.Group("/admin")
	{
		adminAPI.POST("/rooms", admin.CreateRoom)
		adminAPI.GET("/locations/:locationID/rooms", admin.ListRooms)
		adminAPI.POST("/schedules", admin.CreateSchedule)
		adminAPI.POST("/schedules/erasers", admin.CreateEraser)
		adminAPI.POST("/locations/:locationID/materialize", admin.MaterializeSlots)
	}
}
