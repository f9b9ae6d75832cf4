package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Conversation endpoints.
	ProcessMessage      gin.HandlerFunc
	ProcessAudioMessage gin.HandlerFunc
	ResetConversation   gin.HandlerFunc

	// Reservation endpoints.
	ListReservations  gin.HandlerFunc
	GetReservation    gin.HandlerFunc
	DeleteReservation gin.HandlerFunc
}
