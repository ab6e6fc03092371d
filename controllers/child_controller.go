package controllers

import (
	"KinderShelf/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

var childService *services.ChildService

func SetChildService(service *services.ChildService) {
	childService = service
}

func ReadChild(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": child})
}

func UpdateChild(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.Authorize(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input services.ChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := childService.UpdateChild(child.FirebaseUID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child updated successfully", "data": updated})
}

func DeleteChild(c *gin.Context) {
	uid, userType := requester(c)
	child, err := childService.AuthorizeGuardian(uid, userType, c.Param("child_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := childService.DeleteChild(c.Request.Context(), child.FirebaseUID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child deleted successfully"})
}

// AddChild provisions a child under the authenticated guardian.
func AddChild(c *gin.Context) {
	if !requireSelf(c) {
		return
	}

	var input services.ChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := childService.ProvisionChild(c.Request.Context(), c.Param("firebase_uid"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Child added successfully", "data": child})
}

func ListChildren(c *gin.Context) {
	if !requireSelf(c) {
		return
	}

	children, err := childService.ListChildren(c.Param("firebase_uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": children})
}
