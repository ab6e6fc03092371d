package controllers

import (
	"KinderShelf/models"
	"KinderShelf/pagination"
	"KinderShelf/screentime"
	"KinderShelf/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var screenTimeService *services.ScreenTimeService

func SetScreenTimeService(service *services.ScreenTimeService) {
	screenTimeService = service
}

func GetScreenTimeSettings(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	settings, err := screenTimeService.GetSettings(c.Request.Context(), child.FirebaseUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func UpdateScreenTimeSettings(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.AuthorizeGuardian(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var patch screentime.PartialSettings
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := screenTimeService.UpdateSettings(c.Request.Context(), child, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Screen time settings updated successfully", "data": settings})
}

func GetScreenTimeStatus(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := screenTimeService.Status(c.Request.Context(), child.FirebaseUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func RecordUsage(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := screenTimeService.RecordUsage(c.Request.Context(), child, session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usage recorded", "data": report})
}

func GetWeeklyUsage(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	week, err := screenTimeService.WeeklySummary(c.Request.Context(), child.FirebaseUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": week})
}

func GetUsageHistory(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	number, err := queryInt(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
		return
	}
	perPage, err := queryInt(c, "per_page", pagination.DefaultPerPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "per_page must be a number"})
		return
	}

	history, err := screenTimeService.UsageHistory(c.Request.Context(), child.FirebaseUID, pagination.NewPage(number, perPage))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": history})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
