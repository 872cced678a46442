package handlers

import (
	"errors"
	"log"
	"net/http"

	"lawline-backend/models"
	"lawline-backend/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for the chat API
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the request body for a chat turn. All fields are
// required; the selection keys arrive unchanged from the frontend picker.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Sector    string `json:"sector" binding:"required"`
	SubSector string `json:"subSector" binding:"required"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message, country, sector and subSector are required",
		})
		return
	}

	result, err := h.chatService.Chat(c.Request.Context(), service.ChatRequest{
		Message:   req.Message,
		Country:   req.Country,
		Sector:    req.Sector,
		SubSector: req.SubSector,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidChatRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "message, country, sector and subSector are required",
			})
			return
		}
		// Upstream detail stays in the server log; the caller only ever
		// sees a generic message.
		log.Printf("chat request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
	})
}

// Selections handles GET /api/selections
func (h *ChatHandler) Selections(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultSelections())
}
