package main

import (
	"KinderShelf/config"
	"KinderShelf/controllers"
	"KinderShelf/repositories/impl"
	"KinderShelf/routes"
	"KinderShelf/services"
	"KinderShelf/websocket"
	"context"
	"log"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	location, _ := cfg.Location()

	ctx := context.Background()

	// Initialize database and Firebase
	config.InitDatabase(cfg)
	config.InitFirebase(ctx, cfg)
	defer config.Firestore.Close()

	// Initialize repositories
	parentRepo := impl.NewParentRepository(config.DB)
	childRepo := impl.NewChildRepository(config.DB)
	screenTimeRepo := impl.NewScreenTimeRepository(config.Firestore)

	hub := websocket.NewHub()
	controllers.SetWebSocketHub(hub)

	// Initialize services
	notificationService := services.NewNotificationService(config.Messaging)
	childService := services.NewChildService(childRepo, parentRepo, screenTimeRepo)
	parentService := services.NewParentService(parentRepo, childService)
	screenTimeService := services.NewScreenTimeService(screenTimeRepo, parentRepo, notificationService, hub, location)

	controllers.SetChildService(childService)
	controllers.SetParentService(parentService)
	controllers.SetScreenTimeService(screenTimeService)

	r := gin.Default()
	routes.RegisterRoutes(r, []byte(cfg.JWTSecret))

	log.Printf("Starting server on :%s (timezone %s)", cfg.Port, location)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
