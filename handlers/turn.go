package handlers

import (
	"net/http"

	"dragontravel/services/dialogue"
	"dragontravel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DialogueHandler exposes the conversation turn endpoints.
type DialogueHandler struct {
	Service dialogue.DialogueService
	Logger  *zap.Logger
}

func NewDialogueHandler(svc dialogue.DialogueService, logger *zap.Logger) *DialogueHandler {
	return &DialogueHandler{Service: svc, Logger: logger}
}

type turnInput struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
}

// ProcessMessage handles one typed turn. An empty or missing sessionId starts
// a new conversation; the assigned id comes back in the response.
func (h *DialogueHandler) ProcessMessage(c *gin.Context) {
	var input turnInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.ProcessTurn(c.Request.Context(), input.SessionID, input.Message)
	if err != nil {
		h.Logger.Error("turn processing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResetConversation drops an in-progress session.
func (h *DialogueHandler) ResetConversation(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.Reset(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "reset": true})
}
