package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/models"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	Service *service.ChecklistService
}

func NewChecklistHandler(s *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{Service: s}
}

func (h *ChecklistHandler) ListItems(c *gin.Context) {
	items, err := h.Service.ListItems(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type saveResultRequest struct {
	UserID    string `json:"userId"`
	ItemID    string `json:"itemId"`
	IsChecked bool   `json:"isChecked"`
	Notes     string `json:"notes"`
}

func (h *ChecklistHandler) SaveResult(c *gin.Context) {
	var req saveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and itemId are required"})
		return
	}

	result := &models.ChecklistResult{
		UserID:    req.UserID,
		ItemID:    req.ItemID,
		IsChecked: req.IsChecked,
		Notes:     req.Notes,
	}
	if err := h.Service.SaveResult(context.Background(), result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ChecklistHandler) GetResult(c *gin.Context) {
	itemID := c.Param("itemId")
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	result, err := h.Service.GetResult(context.Background(), userID, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
