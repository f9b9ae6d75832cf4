package handlers

import (
	"net/http"

	reservationRepo "dragontravel/database/repository/reservation"
	"dragontravel/services/finalize"
	"dragontravel/services/storage"
	"dragontravel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the stored reservations.
type ReservationHandler struct {
	Repo    reservationRepo.Repository
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewReservationHandler(repo reservationRepo.Repository, store storage.StorageService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Repo: repo, Storage: store, Logger: logger}
}

// ListReservations returns every stored reservation, newest first.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list reservations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// GetReservation returns one reservation by id.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id := c.Param("id")
	res, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteReservation removes one reservation by id, along with its stored
// confirmation audio. A failed audio cleanup does not fail the delete.
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", err.Error())
		return
	}
	if err := h.Storage.DeleteAudio(c.Request.Context(), finalize.AudioID(id)); err != nil {
		h.Logger.Warn("failed to delete reservation audio",
			zap.String("id", id), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
