package controllers

import (
	"KinderShelf/services"
	"KinderShelf/websocket"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var WebSocketHub *websocket.Hub

func SetWebSocketHub(hub *websocket.Hub) {
	WebSocketHub = hub
	go WebSocketHub.Run()
}

// ServeWs subscribes the requester to its family's live screen-time feed.
// Guardians join their own family; children join their guardian's.
func ServeWs(c *gin.Context) {
	userID, userType := requester(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	parentID, err := familyOf(userID, userType)
	if err != nil {
		respondError(c, err)
		return
	}
	if requested := c.Query("parent_id"); requested != "" && requested != parentID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	log.Printf("[WebSocket] User %s (%s) connecting to family %s", userID, userType, parentID)
	websocket.ServeWs(WebSocketHub, c.Writer, c.Request, userID, parentID, userType)
}

func familyOf(userID, userType string) (string, error) {
	if userType != services.UserTypeChild {
		return userID, nil
	}
	child, err := childService.ReadChild(userID)
	if err != nil {
		return "", err
	}
	return child.ParentFirebaseUID, nil
}
