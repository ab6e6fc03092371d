package routes

import (
	"KinderShelf/controllers"
	"KinderShelf/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, jwtSecret []byte) {
	auth := middlewares.AuthMiddleware(jwtSecret)

	r.GET("/healthz", controllers.Healthz)
	r.GET("/ws", auth, controllers.ServeWs)

	parents := r.Group("/parents")
	parents.Use(auth)
	{
		parents.GET("/:firebase_uid", controllers.ReadParent)
		parents.PUT("/:firebase_uid", controllers.UpdateParent)
		parents.DELETE("/:firebase_uid", controllers.DeleteParent)
		parents.GET("/:firebase_uid/children", controllers.ListChildren)
		parents.POST("/:firebase_uid/children", controllers.AddChild)
	}

	children := r.Group("/children")
	children.Use(auth)
	{
		children.GET("/:child_id", controllers.ReadChild)
		children.PUT("/:child_id", controllers.UpdateChild)
		children.DELETE("/:child_id", controllers.DeleteChild)

		children.GET("/:child_id/screen-time", controllers.GetScreenTimeSettings)
		children.PUT("/:child_id/screen-time", controllers.UpdateScreenTimeSettings)
		children.GET("/:child_id/screen-time/status", controllers.GetScreenTimeStatus)

		children.POST("/:child_id/usage", controllers.RecordUsage)
		children.GET("/:child_id/usage/weekly", controllers.GetWeeklyUsage)
		children.GET("/:child_id/usage/history", controllers.GetUsageHistory)
	}
}
