package controllers

import (
	"KinderShelf/screentime"
	"KinderShelf/services"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes err with the status its sentinel maps to.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, screentime.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrChildNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
	case errors.Is(err, services.ErrParentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requester returns the identity the auth middleware put in the context.
func requester(c *gin.Context) (string, string) {
	return c.GetString("firebase_uid"), c.GetString("user_type")
}

// requireSelf rejects requests on another guardian's account.
func requireSelf(c *gin.Context) bool {
	uid, _ := requester(c)
	if uid != c.Param("firebase_uid") {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	return true
}
