package controllers

import (
	"KinderShelf/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

var parentService *services.ParentService

func SetParentService(service *services.ParentService) {
	parentService = service
}

func ReadParent(c *gin.Context) {
	if !requireSelf(c) {
		return
	}

	parent, err := parentService.ReadParent(c.Param("firebase_uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": parent})
}

func UpdateParent(c *gin.Context) {
	if !requireSelf(c) {
		return
	}

	var input services.ParentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent, err := parentService.UpdateParent(c.Param("firebase_uid"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parent updated successfully", "data": parent})
}

func DeleteParent(c *gin.Context) {
	if !requireSelf(c) {
		return
	}

	if err := parentService.DeleteParent(c.Request.Context(), c.Param("firebase_uid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parent deleted successfully"})
}
