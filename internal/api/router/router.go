package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/assignwatch/assignwatch/internal/api/handlers/reminder"
	"github.com/assignwatch/assignwatch/internal/middlewares"
)

func New(handler *reminder.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/watch", handler.Watch)
		api.GET("/watch", handler.ListWatches)
		api.DELETE("/watch/:id", handler.Unwatch)

		api.GET("/assignments", handler.Assignments)

		api.GET("/settings", handler.GetSettings)
		api.PUT("/settings", handler.UpdateSettings)

		api.GET("/reminders/:id/open", handler.Open)
	}

	return e
}
